package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "SESSION_SECRET", "SESSION_TTL", "BCRYPT_COST", "EXTEND_POLICY", "ADMIN_KEY", "SEED_DEMO"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	require.Equal(t, "revive", cfg.ExtendPolicy)
	require.Empty(t, cfg.AdminKey)
	require.False(t, cfg.SeedDemo)
	require.Len(t, cfg.SessionSecret, 32, "a random secret is generated")
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_SECRET", "topsecret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("EXTEND_POLICY", "open-only")
	t.Setenv("ADMIN_KEY", "admin")
	t.Setenv("SEED_DEMO", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []byte("topsecret"), cfg.SessionSecret)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, 4, cfg.BcryptCost)
	require.Equal(t, "open-only", cfg.ExtendPolicy)
	require.Equal(t, "admin", cfg.AdminKey)
	require.True(t, cfg.SeedDemo)
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("ADMIN_KEY", "")
	require.NoError(t, os.Unsetenv("ADMIN_KEY"))
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_KEY=from-file\nPORT=1111\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.AdminKey)
	require.Equal(t, "7000", cfg.Port, "real environment wins over .env")

	require.NoError(t, os.Unsetenv("ADMIN_KEY"))
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SESSION_TTL", "forever"},
		{"SESSION_TTL", "-1h"},
		{"BCRYPT_COST", "abc"},
		{"BCRYPT_COST", "99"},
		{"SEED_DEMO", "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
		})
	}
}
