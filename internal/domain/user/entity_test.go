//go:build unit

package user_test

import (
	"testing"

	"parkspace/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("lowercased and trimmed", func(t *testing.T) {
		email, err := user.NewEmail("  Driver@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "driver@example.com", email.String())
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, s := range []string{"", "not-an-email", "@example.com", "a b@example.com"} {
			_, err := user.NewEmail(s)
			require.ErrorIs(t, err, user.ErrInvalidEmail, "input %q", s)
		}
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("driver@example.com")
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		u, err := user.NewUser(email, "hash", "Test Driver", user.RoleDriver)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, user.RoleDriver, u.Role())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", "   ", user.RoleHost)
		require.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", "Name", user.Role("ADMIN"))
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestRole(t *testing.T) {
	for _, s := range []string{"HOST", "DRIVER"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.True(t, role.IsValid())
	}

	_, err := user.NewRole("driver")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestActorCapabilities(t *testing.T) {
	driver := user.Actor{ID: uuid.New(), Role: user.RoleDriver}
	assert.True(t, driver.IsDriver())
	assert.False(t, driver.IsHost())

	host := user.Actor{ID: uuid.New(), Role: user.RoleHost}
	assert.True(t, host.IsHost())
	assert.False(t, host.IsDriver())

	var anonymous user.Actor
	assert.False(t, anonymous.IsDriver())
	assert.False(t, anonymous.IsHost())
}
