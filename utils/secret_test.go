package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckAdminSecretDefault(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "")

	require.True(t, CheckAdminSecret("delete123"))
	require.False(t, CheckAdminSecret("wrong"))
	require.False(t, CheckAdminSecret(""))
}

func TestCheckAdminSecretConfiguredPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	require.True(t, CheckAdminSecret("s3cret"))
	require.False(t, CheckAdminSecret("delete123"))
}

func TestCheckAdminSecretBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("ADMIN_PASSWORD", "ignored")

	require.True(t, CheckAdminSecret("hunter2"))
	require.False(t, CheckAdminSecret("ignored"))
}
