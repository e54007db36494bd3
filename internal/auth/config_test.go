package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads yaml file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "auth.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"jwt_secret: file-secret\ntoken_ttl_minutes: 30\n",
		), 0o600))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "file-secret", config.JWTSecret)
		assert.Equal(t, 30, config.TokenTTLMinutes)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "auth.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"jwt_secret: file-secret\ntoken_ttl_minutes: 30\n",
		), 0o600))

		t.Setenv("JWT_SECRET", "env-secret")
		t.Setenv("TOKEN_TTL_MINUTES", "15")

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "env-secret", config.JWTSecret)
		assert.Equal(t, 15, config.TokenTTLMinutes)
	})

	t.Run("missing file falls back to env and defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-only-secret")

		config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "env-only-secret", config.JWTSecret)
		assert.Equal(t, DefaultTokenTTLMinutes, config.TokenTTLMinutes)
	})

	t.Run("missing secret fails validation", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("invalid ttl env", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("TOKEN_TTL_MINUTES", "soon")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TOKEN_TTL_MINUTES")
	})
}
