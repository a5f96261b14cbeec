package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

const (
	padTop  = 1
	padLeft = 2

	cellWidth  = 7
	cellHeight = 3
	cellGap    = 1

	titleLines = 2
	boardTop   = padTop + titleLines
	boardLeft  = padLeft
	boardSpan  = entity.GridSide*cellHeight + (entity.GridSide-1)*cellGap

	// status line, focused-cell line, blank, then the buttons
	buttonsTop = boardTop + boardSpan + 4

	buttonGap = 2

	restartLabel = "Restart"
)

// cellAt - the board cell under a terminal coordinate, gaps excluded.
func cellAt(x, y int) (int, bool) {
	relX, relY := x-boardLeft, y-boardTop
	if relX < 0 || relY < 0 {
		return 0, false
	}

	col, offX := relX/(cellWidth+cellGap), relX%(cellWidth+cellGap)
	row, offY := relY/(cellHeight+cellGap), relY%(cellHeight+cellGap)

	if col >= entity.GridSide || row >= entity.GridSide || offX >= cellWidth || offY >= cellHeight {
		return 0, false
	}

	return entity.CellIndex(row, col), true
}

type button int

const (
	buttonNone button = iota
	buttonRestart
	buttonTheme
)

// buttonAt - which control sits under a coordinate. Widths follow the rendered labels.
func buttonAt(x, y int, styles Styles, themeLabel string) button {
	if y != buttonsTop {
		return buttonNone
	}

	restartWidth := lipgloss.Width(styles.Button.Render(restartLabel))
	themeWidth := lipgloss.Width(styles.Button.Render(themeLabel))
	themeLeft := boardLeft + restartWidth + buttonGap

	switch {
	case x >= boardLeft && x < boardLeft+restartWidth:
		return buttonRestart
	case x >= themeLeft && x < themeLeft+themeWidth:
		return buttonTheme
	default:
		return buttonNone
	}
}
