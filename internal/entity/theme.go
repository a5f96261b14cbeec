package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

// Provenance - where the active theme came from.
type Provenance int

const (
	ProvenanceSystemDefault Provenance = iota
	ProvenanceStored
)

// ParseTheme - accepts only the exact persisted values "light" and "dark".
func ParseTheme(value string) (Theme, error) {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value), nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidTheme, value)
	}
}

func (that Theme) Opposite() Theme {
	if that == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (that Theme) IsDark() bool {
	return that == ThemeDark
}

// Title - capitalised name used in labels.
func (that Theme) Title() string {
	if that == ThemeDark {
		return "Dark"
	}
	return "Light"
}

func (that Provenance) String() string {
	if that == ProvenanceStored {
		return "stored"
	}
	return "system-default"
}
