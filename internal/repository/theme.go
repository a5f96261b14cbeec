package repository

import (
	"context"
	"errors"
)

// ThemeKey - the single key the theme preference is stored under.
const ThemeKey = "tic-tac-toe-theme"

var ErrThemeNotFound = errors.New("theme not found")

// ThemeRepository - persists the raw theme string. Values are not validated here.
type ThemeRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, theme string) error
}
