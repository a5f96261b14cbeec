package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-tui/internal"
	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
)

type runFunc func(ctx context.Context, logger *slog.Logger, conf *config.Config) error

// main - is the entry point of the application. It parses flags, loads configuration and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd(app.RunApp).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(run runFunc) *cobra.Command {
	var configPath string
	var systemTheme string
	var driver string

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play Tic-Tac-Toe in the terminal with keyboard or mouse",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if systemTheme != "" {
				conf.Theme.SystemOverride = systemTheme
			}
			if driver != "" {
				conf.Storage.Driver = driver
			}

			if err = conf.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger, closeLog, err := initLogger(conf)
			if err != nil {
				return err
			}
			defer closeLog()

			return run(cmd.Context(), logger, conf)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "path to the YAML config file (optional)")
	cmd.Flags().StringVar(&systemTheme, "system-theme", "", "treat the system theme as light or dark instead of detecting it")
	cmd.Flags().StringVar(&driver, "storage", "", "theme storage driver: memory, file, sqlite or redis")

	return cmd
}

// initialize logger. The terminal belongs to the UI, so logs only go to a file.
func initLogger(conf *config.Config) (*slog.Logger, func(), error) {
	level, err := config.ParseLogLevel(conf.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if conf.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))

	return logger, func() { _ = file.Close() }, nil
}
