package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/paybook/internal/common"
	"github.com/dmitrijs2005/paybook/internal/logging"
	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/dmitrijs2005/paybook/internal/repositories/kv"
	"github.com/dmitrijs2005/paybook/internal/session"
	"github.com/dmitrijs2005/paybook/internal/snapshot"
	"golang.org/x/crypto/bcrypt"
)

// AccountDirectory registers users and tracks the single logged-in account.
//
// Contract:
//   - Register fails with common.ErrDuplicateUsername on an exact,
//     case-sensitive username match; on success the new user is logged in.
//   - Login fails with common.ErrInvalidCredentials for an unknown user and
//     for a wrong password alike.
//   - Logout always clears the session.
//   - Restore picks up a session persisted by an earlier run.
//
// Returned accounts never carry the stored credential.
type AccountDirectory interface {
	Register(ctx context.Context, username string, password []byte, role models.Role) (models.UserAccount, error)
	Login(ctx context.Context, username string, password []byte) (models.UserAccount, error)
	Logout(ctx context.Context) error
	Current() (models.UserAccount, bool)
	Restore(ctx context.Context) (models.UserAccount, bool, error)
}

// hashCost is lowered by tests.
var hashCost = bcrypt.DefaultCost

// bcrypt ignores input past 72 bytes.
const maxPasswordLen = 72

type accountDirectory struct {
	repo    kv.Repository
	tokens  *session.Manager
	log     logging.Logger
	current *models.UserAccount
}

func NewAccountDirectory(repo kv.Repository, tokens *session.Manager, log logging.Logger) AccountDirectory {
	return &accountDirectory{repo: repo, tokens: tokens, log: log.With("component", "accounts")}
}

func (d *accountDirectory) users(ctx context.Context, repo kv.Repository) ([]models.UserAccount, error) {
	return snapshot.Load[models.UserAccount](ctx, repo, common.KeyUsers, d.log)
}

func byUsername(name string) func(models.UserAccount) bool {
	return func(u models.UserAccount) bool { return u.Username == name }
}

// startSession persists a token for u through repo. Callers adopt u as the
// current account only after the enclosing unit of work commits.
func (d *accountDirectory) startSession(ctx context.Context, repo kv.Repository, u models.UserAccount) error {
	tok, err := d.tokens.Issue(u)
	if err != nil {
		return err
	}
	if err := repo.Set(ctx, common.KeySession, []byte(tok)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (d *accountDirectory) Register(ctx context.Context, username string, password []byte, role models.Role) (models.UserAccount, error) {
	username = strings.TrimSpace(username)
	if role == "" {
		role = models.RoleUser
	}

	v := models.NewValidator()
	v.Required("username", username)
	v.Required("password", string(password))
	if len(password) > maxPasswordLen {
		v.Add("password", fmt.Sprintf("must be at most %d bytes", maxPasswordLen))
	}
	if !role.Valid() {
		v.Add("role", "must be admin or user")
	}
	if err := v.Err(); err != nil {
		return models.UserAccount{}, err
	}

	hash, err := bcrypt.GenerateFromPassword(password, hashCost)
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.UserAccount{ID: newID(), Username: username, Password: string(hash), Role: role}

	err = kv.Atomic(ctx, d.repo, func(ctx context.Context, repo kv.Repository) error {
		users, err := d.users(ctx, repo)
		if err != nil {
			return err
		}
		if slices.IndexFunc(users, byUsername(username)) >= 0 {
			return common.ErrDuplicateUsername
		}
		if err := snapshot.Save(ctx, repo, common.KeyUsers, append(users, u)); err != nil {
			return err
		}
		return d.startSession(ctx, repo, u)
	})
	if err != nil {
		return models.UserAccount{}, err
	}

	d.current = &u
	d.log.Info(ctx, "user registered", "username", username, "role", role)
	return u.Public(), nil
}

// checkPassword reports whether password matches stored, and whether stored
// is a legacy plaintext credential that should be rehashed.
func checkPassword(stored string, password []byte) (ok, legacy bool) {
	if _, err := bcrypt.Cost([]byte(stored)); err == nil {
		return bcrypt.CompareHashAndPassword([]byte(stored), password) == nil, false
	}
	return subtle.ConstantTimeCompare([]byte(stored), password) == 1, true
}

func (d *accountDirectory) Login(ctx context.Context, username string, password []byte) (models.UserAccount, error) {
	var logged models.UserAccount

	err := kv.Atomic(ctx, d.repo, func(ctx context.Context, repo kv.Repository) error {
		users, err := d.users(ctx, repo)
		if err != nil {
			return err
		}
		i := slices.IndexFunc(users, byUsername(username))
		if i < 0 {
			return common.ErrInvalidCredentials
		}

		ok, legacy := checkPassword(users[i].Password, password)
		if !ok {
			return common.ErrInvalidCredentials
		}

		// bcrypt cannot hold passwords over maxPasswordLen; those stay plaintext.
		if legacy && len(password) > maxPasswordLen {
			d.log.Warn(ctx, "plaintext credential too long to upgrade", "username", username)
		} else if legacy {
			hash, err := bcrypt.GenerateFromPassword(password, hashCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			users[i].Password = string(hash)
			if err := snapshot.Save(ctx, repo, common.KeyUsers, users); err != nil {
				return err
			}
			d.log.Info(ctx, "upgraded plaintext credential", "username", username)
		}

		logged = users[i]
		return d.startSession(ctx, repo, logged)
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			d.log.Debug(ctx, "login rejected", "username", username)
		}
		return models.UserAccount{}, err
	}

	d.current = &logged
	d.log.Info(ctx, "user logged in", "username", username)
	return logged.Public(), nil
}

func (d *accountDirectory) Logout(ctx context.Context) error {
	d.current = nil
	if err := d.repo.Delete(ctx, common.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (d *accountDirectory) Current() (models.UserAccount, bool) {
	if d.current == nil {
		return models.UserAccount{}, false
	}
	return d.current.Public(), true
}

func (d *accountDirectory) Restore(ctx context.Context) (models.UserAccount, bool, error) {
	raw, err := d.repo.Get(ctx, common.KeySession)
	if err != nil {
		return models.UserAccount{}, false, fmt.Errorf("failed to read session: %w", err)
	}
	if len(raw) == 0 {
		return models.UserAccount{}, false, nil
	}

	claims, err := d.tokens.Parse(string(raw))
	if err != nil {
		d.log.Info(ctx, "dropping stale session", "error", err)
		return models.UserAccount{}, false, d.Logout(ctx)
	}

	users, err := d.users(ctx, d.repo)
	if err != nil {
		return models.UserAccount{}, false, err
	}
	i := slices.IndexFunc(users, func(u models.UserAccount) bool { return u.ID == claims.UserID })
	if i < 0 {
		d.log.Info(ctx, "dropping session of unknown account", "uid", claims.UserID)
		return models.UserAccount{}, false, d.Logout(ctx)
	}

	u := users[i]
	d.current = &u
	return u.Public(), true, nil
}
