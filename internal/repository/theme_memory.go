package repository

import (
	"context"
	"sync"
)

type memoryTheme struct {
	mu    sync.Mutex
	theme *string
}

// NewMemoryThemeRepository - keeps the preference for the lifetime of the process only.
func NewMemoryThemeRepository() ThemeRepository {
	return &memoryTheme{}
}

func (that *memoryTheme) Load(_ context.Context) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.theme == nil {
		return "", ErrThemeNotFound
	}

	return *that.theme, nil
}

func (that *memoryTheme) Save(_ context.Context, theme string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.theme = &theme

	return nil
}
