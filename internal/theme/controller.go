package theme

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/repository"
)

const defaultStorageTimeout = 500 * time.Millisecond

type themeRepo interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, theme string) error
}

// Notifier - receives the active theme after every change.
type Notifier func(theme entity.Theme)

// Controller - resolves, toggles and follows the active theme.
type Controller struct {
	logger  *slog.Logger
	repo    themeRepo
	system  SystemSource
	notify  Notifier
	timeout time.Duration

	active     entity.Theme
	provenance entity.Provenance
}

func NewController(logger *slog.Logger, repo themeRepo, system SystemSource, notify Notifier) *Controller {
	if notify == nil {
		notify = func(entity.Theme) {}
	}

	return &Controller{
		logger:  logger.With("component", "theme"),
		repo:    repo,
		system:  system,
		notify:  notify,
		timeout: defaultStorageTimeout,

		active:     entity.DefaultTheme,
		provenance: entity.ProvenanceSystemDefault,
	}
}

// WithStorageTimeout - bounds every Load and Save call.
func (that *Controller) WithStorageTimeout(timeout time.Duration) *Controller {
	if timeout > 0 {
		that.timeout = timeout
	}
	return that
}

// ResolveInitial - stored choice, then the system default, then dark.
func (that *Controller) ResolveInitial(ctx context.Context) entity.Theme {
	log := that.logger.With("method", "ResolveInitial")

	if stored, ok := that.loadStored(ctx); ok {
		that.apply(stored, entity.ProvenanceStored)
		log.Debug("using stored theme", "theme", stored)
		return stored
	}

	theme := entity.DefaultTheme
	if that.system != nil {
		if systemTheme, ok := that.system.Current(); ok {
			theme = systemTheme
		}
	}

	that.apply(theme, entity.ProvenanceSystemDefault)
	log.Debug("using system theme", "theme", theme)

	return theme
}

func (that *Controller) loadStored(ctx context.Context) (entity.Theme, bool) {
	log := that.logger.With("method", "loadStored")

	if that.repo == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	raw, err := that.repo.Load(ctx)
	if errors.Is(err, repository.ErrThemeNotFound) {
		return "", false
	}

	if err != nil {
		log.Warn("theme storage unavailable", "error", err)
		return "", false
	}

	theme, err := entity.ParseTheme(raw)
	if err != nil {
		log.Warn("ignoring stored theme", "error", err)
		return "", false
	}

	return theme, true
}

// Toggle - flips the theme and pins it as the user's choice. Persisting is best effort.
func (that *Controller) Toggle(ctx context.Context) entity.Theme {
	next := that.active.Opposite()
	that.apply(next, entity.ProvenanceStored)
	that.persist(ctx, next)

	return next
}

func (that *Controller) persist(ctx context.Context, theme entity.Theme) {
	log := that.logger.With("method", "persist")

	if that.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	if err := that.repo.Save(ctx, string(theme)); err != nil {
		log.Warn("could not save theme", "theme", theme, "error", err)
	}
}

// OnSystemPreferenceChange - follows the system only until the user has chosen a theme.
func (that *Controller) OnSystemPreferenceChange(theme entity.Theme) bool {
	if that.provenance != entity.ProvenanceSystemDefault {
		that.logger.Debug("ignoring system theme change", "theme", theme)
		return false
	}

	that.apply(theme, entity.ProvenanceSystemDefault)

	return true
}

// FollowsSystem - true while no explicit choice has been made.
func (that *Controller) FollowsSystem() bool {
	return that.provenance == entity.ProvenanceSystemDefault
}

func (that *Controller) Active() entity.Theme {
	return that.active
}

func (that *Controller) Provenance() entity.Provenance {
	return that.provenance
}

func (that *Controller) apply(theme entity.Theme, provenance entity.Provenance) {
	that.active = theme
	that.provenance = provenance
	that.notify(theme)
}
