package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/focus"
	"github.com/rocketscienceinc/tictactoe-tui/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tui/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-tui/internal/theme"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

// RunApp - runs the application until the player quits or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	themeRepo, closeRepo := OpenThemeRepository(ctx, logger, conf)
	defer closeRepo()

	system := NewSystemSource(conf)
	palette := tui.NewPalette()
	controller := theme.NewController(logger, themeRepo, system, palette.Apply).
		WithStorageTimeout(conf.Storage.Timeout)

	session := usecase.NewSession(logger, tictactoe.NewEngine(), focus.NewNavigator(), controller)
	session.Start(ctx)

	program := tea.NewProgram(
		tui.NewModel(ctx, session, palette),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// only an unpinned theme listens to the system
	if session.FollowsSystemTheme() {
		unsubscribe := system.Subscribe(ctx, func(changed entity.Theme) {
			program.Send(tui.SystemThemeMsg(changed))
		})
		defer unsubscribe()
	}

	log.Info("Starting terminal UI", "storage", conf.Storage.Driver)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}

// OpenThemeRepository - connects the configured backend. Any failure degrades to memory.
func OpenThemeRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ThemeRepository, func()) {
	log := logger.With("component", "app", "method", "OpenThemeRepository", "driver", conf.Storage.Driver)
	noop := func() {}

	switch conf.Storage.Driver {
	case config.DriverFile:
		return repository.NewFileThemeRepository(conf.Storage.PreferencesPath()), noop
	case config.DriverSQLite:
		sqliteStorage, err := openSQLite(ctx, conf.Storage.DatabasePath())
		if err != nil {
			log.Warn("could not open sqlite storage, falling back to memory", "error", err)
			return repository.NewMemoryThemeRepository(), noop
		}

		return repository.NewSQLiteThemeRepository(sqliteStorage.Connection), func() {
			if err = sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		}
	case config.DriverRedis:
		connectCtx, cancel := context.WithTimeout(ctx, conf.Storage.Timeout)
		defer cancel()

		redisStorage, err := storage.NewRedisStorage(connectCtx, conf.Redis.GetRedisAddr())
		if err != nil {
			log.Warn("could not connect to redis storage, falling back to memory", "error", err)
			return repository.NewMemoryThemeRepository(), noop
		}

		return repository.NewRedisThemeRepository(redisStorage.Connection), func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}
	default:
		return repository.NewMemoryThemeRepository(), noop
	}
}

func openSQLite(ctx context.Context, path string) (*storage.SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create database dir: %w", err)
	}

	sqliteStorage, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, err
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		_ = sqliteStorage.Close()
		return nil, err
	}

	return sqliteStorage, nil
}

// NewSystemSource - override, then terminal detection, then nothing.
func NewSystemSource(conf *config.Config) theme.SystemSource {
	if override, err := entity.ParseTheme(conf.Theme.SystemOverride); err == nil {
		return theme.NewStaticSource(override, true)
	}

	if conf.Theme.DetectDisabled {
		return theme.NewStaticSource("", false)
	}

	return theme.NewTerminalSource(conf.Theme.PollInterval)
}
