package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

// palette - semantic colours for one theme.
type palette struct {
	text     lipgloss.Color
	subtext  lipgloss.Color
	surface  lipgloss.Color
	overlay  lipgloss.Color
	markX    lipgloss.Color
	markO    lipgloss.Color
	focus    lipgloss.Color
	win      lipgloss.Color
	base     lipgloss.Color
	disabled lipgloss.Color
}

// Catppuccin Mocha.
var darkPalette = palette{
	text:     "#cdd6f4",
	subtext:  "#a6adc8",
	surface:  "#313244",
	overlay:  "#6c7086",
	markX:    "#f38ba8",
	markO:    "#89b4fa",
	focus:    "#b4befe",
	win:      "#a6e3a1",
	base:     "#1e1e2e",
	disabled: "#181825",
}

// Catppuccin Latte.
var lightPalette = palette{
	text:     "#4c4f69",
	subtext:  "#6c6f85",
	surface:  "#ccd0da",
	overlay:  "#9ca0b0",
	markX:    "#d20f39",
	markO:    "#1e66f5",
	focus:    "#7287fd",
	win:      "#40a02b",
	base:     "#eff1f5",
	disabled: "#e6e9ef",
}

type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Cell         lipgloss.Style
	CellDisabled lipgloss.Style
	CellWinning  lipgloss.Style
	CellFocused  lipgloss.Style
	MarkX        lipgloss.Color
	MarkO        lipgloss.Color
	Status       lipgloss.Style
	Hint         lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

func NewStyles(theme entity.Theme) Styles {
	p := darkPalette
	if theme == entity.ThemeLight {
		p = lightPalette
	}

	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Background(p.surface)

	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.text).
		Background(p.surface)

	return Styles{
		App:          lipgloss.NewStyle().PaddingTop(padTop).PaddingLeft(padLeft).Foreground(p.text),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(p.focus),
		Cell:         cell,
		CellDisabled: cell.Background(p.disabled),
		CellWinning:  cell.Background(p.win).Foreground(p.base),
		CellFocused:  cell.Background(p.focus).Foreground(p.base),
		MarkX:        p.markX,
		MarkO:        p.markO,
		Status:       lipgloss.NewStyle().Foreground(p.text),
		Hint:         lipgloss.NewStyle().Foreground(p.overlay),
		Button:       button,
		ButtonActive: button.Background(p.focus).Foreground(p.base).Bold(true),
	}
}

// Palette - receives theme notifications and keeps the matching styles.
type Palette struct {
	theme  entity.Theme
	styles Styles
}

func NewPalette() *Palette {
	palette := &Palette{}
	palette.Apply(entity.DefaultTheme)

	return palette
}

// Apply - theme.Notifier for the terminal.
func (that *Palette) Apply(theme entity.Theme) {
	that.theme = theme
	that.styles = NewStyles(theme)
}

func (that *Palette) Theme() entity.Theme {
	return that.theme
}

func (that *Palette) Styles() Styles {
	return that.styles
}
