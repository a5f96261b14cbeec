package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/input"
	"github.com/rocketscienceinc/tictactoe-tui/internal/view"
)

const helpText = "arrows/hjkl move · enter play · 1-9 pick · r restart · t theme · tab switch · q quit"

type session interface {
	Dispatch(ctx context.Context, intent input.Intent) bool
	Screen() view.Screen
	Widget() input.Widget
}

// SystemThemeMsg - a system light/dark change delivered through Program.Send.
type SystemThemeMsg entity.Theme

type Model struct {
	ctx     context.Context
	session session
	palette *Palette

	w int
	h int
}

func NewModel(ctx context.Context, session session, palette *Palette) *Model {
	return &Model{
		ctx:     ctx,
		session: session,
		palette: palette,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		return m, nil
	case tea.KeyMsg:
		intent, ok := input.Translate(msg.String(), m.session.Widget())
		if !ok {
			return m, nil
		}
		return m, m.dispatch(intent)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case SystemThemeMsg:
		return m, m.dispatch(input.SystemTheme(entity.Theme(msg)))
	default:
		return m, nil
	}
}

func (m *Model) dispatch(intents ...input.Intent) tea.Cmd {
	for _, intent := range intents {
		if m.session.Dispatch(m.ctx, intent) {
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if cell, ok := cellAt(msg.X, msg.Y); ok {
		intent, _ := input.MoveAt(cell)
		return m.dispatch(intent)
	}

	screen := m.session.Screen()
	switch buttonAt(msg.X, msg.Y, m.palette.Styles(), screen.Toggle.Label) {
	case buttonRestart:
		return m.dispatch(input.FocusWidget(input.WidgetRestart), input.Restart(false))
	case buttonTheme:
		return m.dispatch(input.FocusWidget(input.WidgetTheme), input.ToggleTheme())
	default:
		return nil
	}
}

func (m *Model) View() string {
	screen := m.session.Screen()
	styles := m.palette.Styles()

	var b strings.Builder

	b.WriteString(styles.Title.Render("Tic-Tac-Toe"))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(screen, styles))
	b.WriteString("\n\n")
	b.WriteString(styles.Status.Render(screen.Status))
	b.WriteString("\n")
	b.WriteString(styles.Hint.Render(focusedLabel(screen)))
	b.WriteString("\n\n")
	b.WriteString(renderButtons(screen, styles))
	b.WriteString("\n\n")
	b.WriteString(styles.Hint.Render(screen.Toggle.Description))
	b.WriteString("\n")
	b.WriteString(styles.Hint.Render(helpText))

	return styles.App.Render(b.String())
}

func focusedLabel(screen view.Screen) string {
	for _, cell := range screen.Cells {
		if cell.TabIndex == 0 {
			return cell.Label
		}
	}
	return ""
}

func renderBoard(screen view.Screen, styles Styles) string {
	gapX := strings.Repeat(" ", cellGap)
	rows := make([]string, 0, entity.GridSide*2-1)

	for row := range entity.GridSide {
		cols := make([]string, 0, entity.GridSide*2-1)
		for col := range entity.GridSide {
			if col > 0 {
				cols = append(cols, gapX)
			}
			cell := screen.Cells[entity.CellIndex(row, col)]
			cols = append(cols, renderCell(cell, screen.Focused == input.WidgetBoard, styles))
		}

		if row > 0 {
			rows = append(rows, strings.Repeat("\n", cellGap-1))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(cell view.Cell, boardFocused bool, styles Styles) string {
	style := styles.Cell

	switch {
	case cell.Focused && boardFocused:
		style = styles.CellFocused
	case cell.Winning:
		style = styles.CellWinning
	case cell.Disabled:
		style = styles.CellDisabled
	}

	if !cell.Focused || !boardFocused {
		switch entity.Mark(cell.Symbol) {
		case entity.PlayerX:
			if !cell.Winning {
				style = style.Foreground(styles.MarkX)
			}
		case entity.PlayerO:
			if !cell.Winning {
				style = style.Foreground(styles.MarkO)
			}
		}
	}

	return style.Render(cell.Symbol)
}

func renderButtons(screen view.Screen, styles Styles) string {
	restart := styles.Button
	if screen.Focused == input.WidgetRestart {
		restart = styles.ButtonActive
	}

	toggle := styles.Button
	if screen.Focused == input.WidgetTheme {
		toggle = styles.ButtonActive
	}

	// pressed state
	toggle = toggle.Underline(screen.Toggle.Pressed)

	return restart.Render(restartLabel) + strings.Repeat(" ", buttonGap) + toggle.Render(screen.Toggle.Label)
}
