package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "STORAGE_DRIVER", "JWT_TTL", "LOG_LEVEL", "REDIS_ADDR", "CORS_ALLOW_ORIGINS"} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.CORSAllowOrigins)
	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	unsetEnv(t, "HTTP_PORT")
	unsetEnv(t, "CORS_ALLOW_ORIGINS")
	t.Setenv("STORAGE_DRIVER", "memory")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"HTTP_PORT=9090\nSTORAGE_DRIVER=postgres\nCORS_ALLOW_ORIGINS=https://a.example,https://b.example\n",
	), 0o600))

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"storage driver", "STORAGE_DRIVER", "mongo"},
		{"log level", "LOG_LEVEL", "loud"},
		{"ttl", "JWT_TTL", "-1h"},
		{"ttl syntax", "JWT_TTL", "forever"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig("")

			require.Error(t, err)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "p@ss word",
		DBName:     "laundry",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/laundry?sslmode=disable", cfg.DSN())
}
