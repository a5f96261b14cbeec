package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/focus"
	"github.com/rocketscienceinc/tictactoe-tui/internal/input"
	"github.com/rocketscienceinc/tictactoe-tui/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tui/internal/theme"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

func newTestModel(t *testing.T) (*Model, *usecase.Session, *Palette) {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	palette := NewPalette()

	controller := theme.NewController(logger, repository.NewMemoryThemeRepository(), theme.NewStaticSource(entity.ThemeDark, true), palette.Apply)
	session := usecase.NewSession(logger, tictactoe.NewEngine(), focus.NewNavigator(), controller)
	session.Start(ctx)

	return NewModel(ctx, session, palette), session, palette
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// cellCenter - a terminal coordinate inside the given cell.
func cellCenter(index int) (int, int) {
	row, col := entity.CellPosition(index)
	return boardLeft + col*(cellWidth+cellGap) + cellWidth/2, boardTop + row*(cellHeight+cellGap) + cellHeight/2
}

func TestModel_Keyboard(t *testing.T) {
	t.Run("Digits play the win scenario", func(t *testing.T) {
		// Given: a new model
		m, session, _ := newTestModel(t)

		// When: 1,5,2,6,3 are typed
		send(m, runes("1"), runes("5"), runes("2"), runes("6"), runes("3"))

		// Then: X wins and the view says so
		assert.Equal(t, "X wins! Press Restart to play again.", session.Screen().Status)
		assert.Contains(t, m.View(), "X wins! Press Restart to play again.")
	})

	t.Run("Arrows and enter play the focused cell", func(t *testing.T) {
		// Given: a new model
		m, session, _ := newTestModel(t)

		// When: moving right twice, down once and pressing enter
		send(m,
			tea.KeyMsg{Type: tea.KeyRight},
			tea.KeyMsg{Type: tea.KeyRight},
			tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyEnter},
		)

		// Then: X sits on cell 5
		screen := session.Screen()
		assert.Equal(t, "X", screen.Cells[5].Symbol)
		assert.Equal(t, "O's turn.", screen.Status)
		assert.Contains(t, m.View(), "Row 2, column 3, X")
	})

	t.Run("Tab to restart and activate it", func(t *testing.T) {
		// Given: a game in progress
		m, session, _ := newTestModel(t)
		send(m, runes("9"))

		// When: tabbing to Restart and pressing enter
		send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})

		// Then: the game restarts and the board takes focus again
		screen := session.Screen()
		assert.Empty(t, screen.Cells[8].Symbol)
		assert.Equal(t, input.WidgetBoard, session.Widget())
		assert.True(t, screen.Cells[0].Focused)
	})

	t.Run("t toggles the theme and restyles", func(t *testing.T) {
		// Given: a dark model
		m, session, palette := newTestModel(t)
		require.Equal(t, entity.ThemeDark, palette.Theme())

		// When: t is pressed
		send(m, runes("t"))

		// Then: the palette follows and the toggle label changes
		assert.Equal(t, entity.ThemeLight, palette.Theme())
		assert.Equal(t, "Theme: Light", session.Screen().Toggle.Label)
		assert.Contains(t, m.View(), "Theme: Light")
	})

	t.Run("q quits", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		cmd := send(m, runes("q"))

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("Unknown keys do nothing", func(t *testing.T) {
		m, session, _ := newTestModel(t)

		cmd := send(m, runes("z"))

		assert.Nil(t, cmd)
		assert.Equal(t, "X's turn.", session.Screen().Status)
	})
}

func TestModel_Mouse(t *testing.T) {
	t.Run("Clicking a cell plays it", func(t *testing.T) {
		// Given: a new model
		m, session, _ := newTestModel(t)

		// When: the centre cell is clicked
		send(m, click(cellCenter(4)))

		// Then: X is placed and focus moves there
		screen := session.Screen()
		assert.Equal(t, "X", screen.Cells[4].Symbol)
		assert.True(t, screen.Cells[4].Focused)
	})

	t.Run("Clicking the gap does nothing", func(t *testing.T) {
		m, session, _ := newTestModel(t)

		send(m, click(boardLeft+cellWidth, boardTop))

		assert.Equal(t, "X's turn.", session.Screen().Status)
	})

	t.Run("Clicking Restart keeps board focus", func(t *testing.T) {
		// Given: a move on cell 6
		m, session, _ := newTestModel(t)
		send(m, click(cellCenter(6)))

		// When: Restart is clicked
		send(m, click(boardLeft, buttonsTop))

		// Then: the board is cleared and the cell focus is kept
		screen := session.Screen()
		assert.Empty(t, screen.Cells[6].Symbol)
		assert.True(t, screen.Cells[6].Focused)
		assert.Equal(t, input.WidgetRestart, session.Widget())
	})

	t.Run("Clicking the theme button toggles", func(t *testing.T) {
		m, _, palette := newTestModel(t)
		restartWidth := lipgloss.Width(palette.Styles().Button.Render(restartLabel))

		send(m, click(boardLeft+restartWidth+buttonGap, buttonsTop))

		assert.Equal(t, entity.ThemeLight, palette.Theme())
	})

	t.Run("Right clicks are ignored", func(t *testing.T) {
		m, session, _ := newTestModel(t)
		x, y := cellCenter(0)

		send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

		assert.Empty(t, session.Screen().Cells[0].Symbol)
	})
}

func TestModel_SystemTheme(t *testing.T) {
	// Given: a model following a dark system
	m, _, palette := newTestModel(t)

	// When: the system turns light
	send(m, SystemThemeMsg(entity.ThemeLight))

	// Then: the palette follows
	assert.Equal(t, entity.ThemeLight, palette.Theme())

	// When: the user toggles and the system changes again
	send(m, runes("T"), SystemThemeMsg(entity.ThemeLight))

	// Then: the user's choice holds
	assert.Equal(t, entity.ThemeDark, palette.Theme())
}

func TestCellAt(t *testing.T) {
	for index := range entity.BoardSize {
		x, y := cellCenter(index)

		got, ok := cellAt(x, y)

		require.True(t, ok, index)
		assert.Equal(t, index, got)
	}

	_, ok := cellAt(0, 0)
	assert.False(t, ok)

	_, ok = cellAt(boardLeft, boardTop+boardSpan)
	assert.False(t, ok)
}
