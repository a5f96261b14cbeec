package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
storage:
  driver: redis
  timeout: 2s
redis:
  host: cache
  port: "6380"
theme:
  detect-disabled: true
  system-override: light
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, 2*time.Second, conf.Storage.Timeout)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.True(t, conf.Theme.DetectDisabled)
		assert.Equal(t, "light", conf.Theme.SystemOverride)
		require.NoError(t, conf.Validate())
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading a missing file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, DriverFile, conf.Storage.Driver)
		assert.Equal(t, 500*time.Millisecond, conf.Storage.Timeout)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.False(t, conf.Theme.DetectDisabled)
		assert.Zero(t, conf.Theme.PollInterval)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: env overrides
		t.Setenv("TICTACTOE_STORAGE_DRIVER", "memory")
		t.Setenv("TICTACTOE_SYSTEM_THEME", "dark")

		// When: loading without a file
		conf, err := Load("")

		// Then: the env values are used
		require.NoError(t, err)
		assert.Equal(t, DriverMemory, conf.Storage.Driver)
		assert.Equal(t, "dark", conf.Theme.SystemOverride)
	})

	t.Run("Reports a broken file", func(t *testing.T) {
		// Given: a file that is not valid yaml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("storage: [nope"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: the error is returned instead of defaults
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Rejects unknown drivers", func(t *testing.T) {
		conf := &Config{LogLevel: "info", Storage: Storage{Driver: "etcd"}}

		assert.ErrorIs(t, conf.Validate(), ErrUnknownDriver)
	})

	t.Run("Rejects bad overrides", func(t *testing.T) {
		conf := &Config{LogLevel: "info", Storage: Storage{Driver: DriverMemory}, Theme: Theme{SystemOverride: "blue"}}

		assert.ErrorIs(t, conf.Validate(), apperror.ErrInvalidTheme)
	})

	t.Run("Rejects unknown log levels", func(t *testing.T) {
		// Given: a config with a misspelled level
		for _, level := range []string{"", "verbose", "INFO", "warning"} {
			conf := &Config{LogLevel: level, Storage: Storage{Driver: DriverMemory}}

			// Then: validation fails instead of falling back to info
			assert.ErrorIs(t, conf.Validate(), ErrUnknownLogLevel, level)
		}
	})

	t.Run("Accepts every known log level", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			conf := &Config{LogLevel: level, Storage: Storage{Driver: DriverMemory}}

			assert.NoError(t, conf.Validate(), level)
		}
	})
}

func TestStorage_Paths(t *testing.T) {
	storage := Storage{FilePath: "/tmp/p.toml", SQLitePath: "/tmp/p.db"}
	assert.Equal(t, "/tmp/p.toml", storage.PreferencesPath())
	assert.Equal(t, "/tmp/p.db", storage.DatabasePath())

	empty := Storage{}
	assert.Equal(t, "preferences.toml", filepath.Base(empty.PreferencesPath()))
	assert.Equal(t, "preferences.db", filepath.Base(empty.DatabasePath()))
}
