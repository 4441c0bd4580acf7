package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test; t.Setenv registers
// the restore before the variable is removed.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var serverKeys = []string{
	"CONFIG_PATH", "APP_ENV", "PORT", "CORS_ORIGINS", "SERVICE_NAME",
	"SESSION_SECRET", "TOKEN_TTL", "DB_DSN", "USERS_FILE", "BCRYPT_COST",
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, serverKeys...)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://frontend:3000"}, cfg.Origins)
	assert.Equal(t, "JatayuNetra Backend", cfg.ServiceName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.DBURL)
	assert.Empty(t, cfg.UsersFile)
	assert.Empty(t, cfg.SessionSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	unsetEnv(t, serverKeys...)
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	unsetEnv(t, serverKeys...)
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: prod\nport: \"9000\"\nusers_file: /etc/jatayu/users.yaml\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9100", cfg.Port, "environment wins over the file")
	assert.Equal(t, "/etc/jatayu/users.yaml", cfg.UsersFile)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	unsetEnv(t, serverKeys...)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadClient(t *testing.T) {
	unsetEnv(t, "JATAYU_API_URL", "JATAYU_TIMEOUT", "JATAYU_SESSION_FILE")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadClient()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3001", cfg.APIURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "session.json", filepath.Base(cfg.SessionFile))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JATAYU_API_URL", "http://api.test:3001/")
		t.Setenv("JATAYU_SESSION_FILE", "/tmp/s.json")
		cfg, err := LoadClient()
		require.NoError(t, err)
		assert.Equal(t, "http://api.test:3001", cfg.APIURL)
		assert.Equal(t, "/tmp/s.json", cfg.SessionFile)
	})
}
