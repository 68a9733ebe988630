package gosnowconn

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

var snowEnvNames = []string{
	EnvUser, EnvAccount, EnvPassword, EnvPrivateKey,
	EnvWarehouse, EnvDatabase, EnvSchema, EnvRole,
}

// clearSnowEnv unsets every SNOW_* variable in both cases and restores the
// previous values when the test finishes.
func clearSnowEnv(t *testing.T) {
	t.Helper()
	for _, name := range snowEnvNames {
		for _, key := range []string{name, strings.ToLower(name)} {
			if prev, ok := os.LookupEnv(key); ok {
				key, prev := key, prev
				t.Cleanup(func() { os.Setenv(key, prev) })
				os.Unsetenv(key)
			}
		}
	}
}

func TestConfigFromEnvPasswordOnly(t *testing.T) {
	clearSnowEnv(t)
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvAccount, "xy123")
	t.Setenv(EnvPassword, "secret")

	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "xy123", cfg.Account)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "", cfg.PrivateKeyPEM)
	assert.Equal(t, "", cfg.Warehouse)
	assert.Equal(t, "", cfg.Database)
	assert.Equal(t, "", cfg.Schema)
	assert.Equal(t, "", cfg.Role)
}

func TestConfigFromEnvAllFields(t *testing.T) {
	clearSnowEnv(t)
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvAccount, "xy123")
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvWarehouse, "wh")
	t.Setenv(EnvDatabase, "db")
	t.Setenv(EnvSchema, "public")
	t.Setenv(EnvRole, "analyst")

	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, "wh", cfg.Warehouse)
	assert.Equal(t, "db", cfg.Database)
	assert.Equal(t, "public", cfg.Schema)
	assert.Equal(t, "analyst", cfg.Role)
}

func TestEnvLookupLowercaseFallback(t *testing.T) {
	clearSnowEnv(t)
	t.Setenv("snow_user", "alice")
	t.Setenv("snow_account", "xy123")
	t.Setenv("snow_pwd", "secret")

	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "xy123", cfg.Account)
	assert.Equal(t, "secret", cfg.Password)
}

func TestEnvLookupExactCaseWins(t *testing.T) {
	clearSnowEnv(t)
	t.Setenv(EnvUser, "exact")
	t.Setenv("snow_user", "lower")
	t.Setenv(EnvAccount, "xy123")
	t.Setenv(EnvPassword, "secret")

	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, "exact", cfg.User)
}

func TestConfigFromEnvMissingUser(t *testing.T) {
	clearSnowEnv(t)
	t.Setenv(EnvAccount, "xy123")
	t.Setenv(EnvPassword, "secret")

	_, err := ConfigFromEnv()
	assert.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestConfigFromEnvMissingAccount(t *testing.T) {
	clearSnowEnv(t)
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvPassword, "secret")

	_, err := ConfigFromEnv()
	assert.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestConfigFromEnvNoAuthSecret(t *testing.T) {
	clearSnowEnv(t)
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvAccount, "xy123")

	_, err := ConfigFromEnv()
	assert.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	var se *SnowconnError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeNoAuthSecret, se.Number)
}

func TestConfigFromEnvDotEnvFallback(t *testing.T) {
	clearSnowEnv(t)

	dir := t.TempDir()
	content := EnvUser + "=eve\n" + EnvAccount + "=ab123\n" + EnvPassword + "=hunter2\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	// godotenv writes into the real environment
	t.Cleanup(func() {
		os.Unsetenv(EnvUser)
		os.Unsetenv(EnvAccount)
		os.Unsetenv(EnvPassword)
	})

	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, "eve", cfg.User)
	assert.Equal(t, "ab123", cfg.Account)
	assert.Equal(t, "hunter2", cfg.Password)
}
