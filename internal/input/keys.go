package input

import (
	"github.com/rocketscienceinc/tictactoe-tui/internal/focus"
)

// Widget - the focusable controls, in tab order.
type Widget int

const (
	WidgetBoard Widget = iota
	WidgetRestart
	WidgetTheme

	widgetCount
)

// Next - the following widget in tab order, wrapping around.
func (that Widget) Next() Widget {
	return (that + 1) % widgetCount
}

func (that Widget) Prev() Widget {
	return (that + widgetCount - 1) % widgetCount
}

func (that Widget) String() string {
	switch that {
	case WidgetBoard:
		return "board"
	case WidgetRestart:
		return "restart"
	case WidgetTheme:
		return "theme"
	default:
		return "unknown"
	}
}

var boardKeys = map[string]Intent{
	"left":  Navigate(focus.Left),
	"h":     Navigate(focus.Left),
	"right": Navigate(focus.Right),
	"l":     Navigate(focus.Right),
	"up":    Navigate(focus.Up),
	"k":     Navigate(focus.Up),
	"down":  Navigate(focus.Down),
	"j":     Navigate(focus.Down),
	"home":  JumpToStart(),
	"end":   JumpToEnd(),
	"enter": Activate(),
	" ":     Activate(),
	"space": Activate(),
}

// Translate - maps a key name, as bubbletea's KeyMsg.String reports it, to an intent.
// Board keys only apply while the board holds focus.
func Translate(key string, focused Widget) (Intent, bool) {
	switch key {
	case "ctrl+c", "q", "Q":
		return Quit(), true
	case "tab":
		return NextWidget(), true
	case "shift+tab":
		return PrevWidget(), true
	case "t", "T":
		return ToggleTheme(), true
	case "r", "R":
		return Restart(true), true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return QuickSelect(int(key[0] - '1'))
	}

	switch focused {
	case WidgetBoard:
		intent, ok := boardKeys[key]
		return intent, ok
	case WidgetRestart:
		if isActivation(key) {
			return Restart(true), true
		}
	case WidgetTheme:
		if isActivation(key) {
			return ToggleTheme(), true
		}
	}

	return Intent{}, false
}

func isActivation(key string) bool {
	return key == "enter" || key == " " || key == "space"
}
