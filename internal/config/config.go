package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

var (
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Theme    Theme   `yaml:"theme"`
}

type Storage struct {
	Driver     string        `yaml:"driver" env:"TICTACTOE_STORAGE_DRIVER" env-default:"file"`
	Timeout    time.Duration `yaml:"timeout" env:"TICTACTOE_STORAGE_TIMEOUT" env-default:"500ms"`
	FilePath   string        `yaml:"file-path" env:"TICTACTOE_STORAGE_FILE"`
	SQLitePath string        `yaml:"sqlite-path" env:"TICTACTOE_STORAGE_SQLITE"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// Theme - DetectDisabled leaves no system preference, PollInterval 0 disables re-checking the
// terminal background, SystemOverride ("light" or "dark") replaces detection entirely.
type Theme struct {
	DetectDisabled bool          `yaml:"detect-disabled" env:"TICTACTOE_THEME_NO_DETECT"`
	PollInterval   time.Duration `yaml:"poll-interval" env:"TICTACTOE_THEME_POLL" env-default:"0s"`
	SystemOverride string        `yaml:"system-override" env:"TICTACTOE_SYSTEM_THEME"`
}

// Load - reads path when it exists, otherwise only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case path == "" || errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	return config, nil
}

// ParseLogLevel - maps log-level values onto slog levels.
func ParseLogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, value)
}

func (that *Config) Validate() error {
	if _, err := ParseLogLevel(that.LogLevel); err != nil {
		return err
	}

	switch that.Storage.Driver {
	case DriverMemory, DriverFile, DriverSQLite, DriverRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, that.Storage.Driver)
	}

	if that.Theme.SystemOverride != "" {
		if _, err := entity.ParseTheme(that.Theme.SystemOverride); err != nil {
			return fmt.Errorf("system theme override: %w", err)
		}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// PreferencesPath - the file driver's location, defaulting under the user config dir.
func (that *Storage) PreferencesPath() string {
	if that.FilePath != "" {
		return that.FilePath
	}

	return filepath.Join(userConfigDir(), "tictactoe", "preferences.toml")
}

// DatabasePath - the sqlite driver's location, defaulting under the user config dir.
func (that *Storage) DatabasePath() string {
	if that.SQLitePath != "" {
		return that.SQLitePath
	}

	return filepath.Join(userConfigDir(), "tictactoe", "preferences.db")
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return dir
}
