package input

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/focus"
)

type Kind int

const (
	KindNone Kind = iota
	KindMoveAt
	KindActivate
	KindQuickSelect
	KindNavigate
	KindJumpStart
	KindJumpEnd
	KindRestart
	KindToggleTheme
	KindSystemTheme
	KindNextWidget
	KindPrevWidget
	KindFocusWidget
	KindQuit
)

var kindNames = map[Kind]string{
	KindNone:        "none",
	KindMoveAt:      "move_at",
	KindActivate:    "activate",
	KindQuickSelect: "quick_select",
	KindNavigate:    "navigate",
	KindJumpStart:   "jump_start",
	KindJumpEnd:     "jump_end",
	KindRestart:     "restart",
	KindToggleTheme: "toggle_theme",
	KindSystemTheme: "system_theme",
	KindNextWidget:  "next_widget",
	KindPrevWidget:  "prev_widget",
	KindFocusWidget: "focus_widget",
	KindQuit:        "quit",
}

func (that Kind) String() string {
	if name, ok := kindNames[that]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(that))
}

// Intent - one discrete command for the session. Cell is always a valid board index.
type Intent struct {
	Kind      Kind
	Cell      int
	Direction focus.Direction
	Refocus   bool
	Theme     entity.Theme
	Widget    Widget
}

// MoveAt - a pointer activation: focus the cell without moving terminal focus, then play it.
func MoveAt(cell int) (Intent, bool) {
	if !entity.IsValidCell(cell) {
		return Intent{}, false
	}
	return Intent{Kind: KindMoveAt, Cell: cell}, true
}

// QuickSelect - digit keys 1-9: focus the cell and play it.
func QuickSelect(cell int) (Intent, bool) {
	if !entity.IsValidCell(cell) {
		return Intent{}, false
	}
	return Intent{Kind: KindQuickSelect, Cell: cell, Refocus: true}, true
}

func Activate() Intent {
	return Intent{Kind: KindActivate}
}

func Navigate(direction focus.Direction) Intent {
	return Intent{Kind: KindNavigate, Direction: direction, Refocus: true}
}

func JumpToStart() Intent {
	return Intent{Kind: KindJumpStart, Refocus: true}
}

func JumpToEnd() Intent {
	return Intent{Kind: KindJumpEnd, Refocus: true}
}

// Restart - refocus puts the cursor back on the first cell.
func Restart(refocus bool) Intent {
	return Intent{Kind: KindRestart, Refocus: refocus}
}

func ToggleTheme() Intent {
	return Intent{Kind: KindToggleTheme}
}

func SystemTheme(theme entity.Theme) Intent {
	return Intent{Kind: KindSystemTheme, Theme: theme}
}

func NextWidget() Intent {
	return Intent{Kind: KindNextWidget}
}

func PrevWidget() Intent {
	return Intent{Kind: KindPrevWidget}
}

func Quit() Intent {
	return Intent{Kind: KindQuit}
}

// FocusWidget - pointer focus landing on a control.
func FocusWidget(widget Widget) Intent {
	return Intent{Kind: KindFocusWidget, Widget: widget}
}
