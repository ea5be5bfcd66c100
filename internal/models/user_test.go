package models

import (
	"testing"

	"github.com/dmitrijs2005/paybook/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	r, err = ParseRole(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("root")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUserAccount_Public(t *testing.T) {
	u := UserAccount{ID: "1", Username: "bob", Password: "secret", Role: RoleUser}
	p := u.Public()

	assert.Empty(t, p.Password)
	assert.Equal(t, "bob", p.Username)
	assert.Equal(t, "secret", u.Password)
}
