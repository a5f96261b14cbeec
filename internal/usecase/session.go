package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/focus"
	"github.com/rocketscienceinc/tictactoe-tui/internal/input"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/view"
)

type themeController interface {
	ResolveInitial(ctx context.Context) entity.Theme
	Toggle(ctx context.Context) entity.Theme
	OnSystemPreferenceChange(theme entity.Theme) bool
	Active() entity.Theme
	FollowsSystem() bool
}

// Session - one interactive game. Every intent is handled to completion before the next.
type Session struct {
	logger *slog.Logger

	engine    *tictactoe.Engine
	navigator *focus.Navigator
	theme     themeController

	widget input.Widget
}

func NewSession(logger *slog.Logger, engine *tictactoe.Engine, navigator *focus.Navigator, theme themeController) *Session {
	return &Session{
		logger: logger.With("component", "session"),

		engine:    engine,
		navigator: navigator,
		theme:     theme,

		widget: input.WidgetBoard,
	}
}

// Start - resolves the theme and begins a fresh game without moving focus.
func (that *Session) Start(ctx context.Context) {
	active := that.theme.ResolveInitial(ctx)
	that.engine.Restart()

	that.logger.Info("session started", "theme", active, "follows_system", that.theme.FollowsSystem())
}

// Dispatch - applies one intent. Returns true when the session should end.
func (that *Session) Dispatch(ctx context.Context, intent input.Intent) bool {
	log := that.logger.With("method", "Dispatch", "intent", intent.Kind)

	switch intent.Kind {
	case input.KindMoveAt, input.KindQuickSelect:
		that.focusCell(intent.Cell)
		that.play(intent.Cell)
	case input.KindActivate:
		that.play(that.navigator.Index())
	case input.KindNavigate:
		that.navigator.Move(intent.Direction)
		that.widget = input.WidgetBoard
	case input.KindJumpStart:
		that.navigator.JumpToStart()
		that.widget = input.WidgetBoard
	case input.KindJumpEnd:
		that.navigator.JumpToEnd()
		that.widget = input.WidgetBoard
	case input.KindRestart:
		that.restart(intent.Refocus)
	case input.KindToggleTheme:
		active := that.theme.Toggle(ctx)
		log.Debug("theme toggled", "theme", active)
	case input.KindSystemTheme:
		if that.theme.OnSystemPreferenceChange(intent.Theme) {
			log.Debug("following system theme", "theme", intent.Theme)
		}
	case input.KindNextWidget:
		that.widget = that.widget.Next()
	case input.KindPrevWidget:
		that.widget = that.widget.Prev()
	case input.KindFocusWidget:
		that.widget = intent.Widget
	case input.KindQuit:
		log.Info("session ended")
		return true
	default:
		log.Debug("ignoring intent")
	}

	return false
}

func (that *Session) focusCell(cell int) {
	if err := that.navigator.SetFocus(cell); err != nil {
		that.logger.Debug("focus rejected", "cell", cell, "error", err)
		return
	}

	that.widget = input.WidgetBoard
}

func (that *Session) play(cell int) {
	log := that.logger.With("method", "play", "cell", cell)

	err := that.engine.AttemptMove(cell)
	switch {
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrCellOccupied):
		log.Debug("move rejected", "reason", err)
	case err != nil:
		log.Warn("move failed", "error", err)
	default:
		log.Debug("move played", "status", that.engine.Status())
	}
}

func (that *Session) restart(refocus bool) {
	that.engine.Restart()

	if refocus {
		that.navigator.JumpToStart()
		that.widget = input.WidgetBoard
	}

	that.logger.Debug("game restarted", "refocus", refocus)
}

// Screen - the current render request.
func (that *Session) Screen() view.Screen {
	return view.Project(that.engine, that.navigator, that.theme.Active(), that.widget)
}

func (that *Session) FollowsSystemTheme() bool {
	return that.theme.FollowsSystem()
}

func (that *Session) Widget() input.Widget {
	return that.widget
}
