package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSecret(t *testing.T) {
	t.Run("From environment", func(t *testing.T) {
		t.Setenv(SecretEnvVar, "sk-test-123")
		key, err := LoadSecret(SecretEnvVar)
		require.NoError(t, err)
		assert.Equal(t, "sk-test-123", key)
	})

	t.Run("Missing secret is an error", func(t *testing.T) {
		t.Setenv(SecretEnvVar, "")
		_, err := LoadSecret(SecretEnvVar)
		require.Error(t, err)
		assert.Contains(t, err.Error(), SecretEnvVar)
	})

	t.Run("From .env file", func(t *testing.T) {
		t.Setenv(SecretEnvVar, "")
		// Unset entirely so godotenv's value is picked up.
		require.NoError(t, os.Unsetenv(SecretEnvVar))

		tmp := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte(SecretEnvVar+"=sk-from-dotenv\n"), 0o644))
		t.Chdir(tmp)

		key, err := LoadSecret(SecretEnvVar)
		require.NoError(t, err)
		assert.Equal(t, "sk-from-dotenv", key)
	})
}
