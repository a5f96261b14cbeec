package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type fileTheme struct {
	path string
}

// NewFileThemeRepository - stores preferences as a flat TOML table in path.
// Keys other than ThemeKey are preserved on save.
func NewFileThemeRepository(path string) ThemeRepository {
	return &fileTheme{
		path: path,
	}
}

func (that *fileTheme) read() (map[string]string, error) {
	prefs := map[string]string{}

	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	if _, err = toml.Decode(string(data), &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return prefs, nil
}

func (that *fileTheme) Load(_ context.Context) (string, error) {
	prefs, err := that.read()
	if err != nil {
		return "", err
	}

	theme, ok := prefs[ThemeKey]
	if !ok {
		return "", ErrThemeNotFound
	}

	return theme, nil
}

func (that *fileTheme) Save(_ context.Context, theme string) error {
	prefs, err := that.read()
	if err != nil {
		// a corrupt file is replaced rather than blocking the save
		prefs = map[string]string{}
	}

	prefs[ThemeKey] = theme

	var buf bytes.Buffer
	if err = toml.NewEncoder(&buf).Encode(prefs); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(that.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences dir: %w", err)
	}

	if err = os.WriteFile(that.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}
