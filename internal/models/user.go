package models

import "strings"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseRole accepts "admin" or "user"; an empty string means RoleUser.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleUser, nil
	}
	r := Role(s)
	if !r.Valid() {
		v := NewValidator()
		v.Add("role", "must be admin or user")
		return "", v.Err()
	}
	return r, nil
}

// UserAccount is a registered login. Password holds a bcrypt hash; accounts
// imported from older plaintext data are upgraded on their next login.
type UserAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Public returns a copy without the credential.
func (u UserAccount) Public() UserAccount {
	u.Password = ""
	return u
}
