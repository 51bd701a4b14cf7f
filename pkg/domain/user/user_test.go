package user_test

import (
	"testing"

	"github.com/amirasaad/networth/pkg/domain/user"
	"github.com/amirasaad/networth/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()
	u, err := user.NewUser(" Bob@Example.com", "secret1", " Bob ")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)
	assert.Equal(t, "Bob", u.DisplayName)
	assert.NotEqual(t, "secret1", u.Password)
	assert.True(t, utils.CheckPasswordHash("secret1", u.Password))
}

func TestNewUser_Invalid(t *testing.T) {
	t.Parallel()
	_, err := user.NewUser("nope", "secret1", "")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
	_, err = user.NewUser("a@b.com", "123", "")
	assert.ErrorIs(t, err, user.ErrWeakPassword)
}
