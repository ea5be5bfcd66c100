// Package session issues and verifies the signed tokens that keep a login
// alive between runs of the CLI.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/paybook/internal/common"
	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the account a token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string      `json:"uid"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl, now: time.Now}
}

// Issue returns an HS256 token for u valid for the manager's TTL.
func (m *Manager) Issue(u models.UserAccount) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})

	s, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return s, nil
}

// Parse verifies tokenString and returns its claims. Every failure matches
// common.ErrInvalidToken; expiry additionally matches common.ErrTokenExpired.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
