package view

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/input"
	"github.com/rocketscienceinc/tictactoe-tui/internal/theme"
)

type game interface {
	Cell(index int) entity.Mark
	IsOver() bool
	IsWinningCell(index int) bool
	StatusMessage() string
}

type navigator interface {
	Index() int
	TabIndex(index int) int
}

// Cell - everything the display needs to draw one board cell.
type Cell struct {
	Index    int
	Symbol   string
	Winning  bool
	Disabled bool
	Focused  bool
	TabIndex int
	Label    string
}

// Screen - a full render request.
type Screen struct {
	Cells   [entity.BoardSize]Cell
	Status  string
	Theme   entity.Theme
	Toggle  theme.ToggleView
	Focused input.Widget
}

func Project(game game, nav navigator, active entity.Theme, focused input.Widget) Screen {
	screen := Screen{
		Status:  game.StatusMessage(),
		Theme:   active,
		Toggle:  theme.NewToggleView(active),
		Focused: focused,
	}

	over := game.IsOver()
	for index := range screen.Cells {
		mark := game.Cell(index)

		screen.Cells[index] = Cell{
			Index:    index,
			Symbol:   string(mark),
			Winning:  game.IsWinningCell(index),
			Disabled: over || !mark.IsEmpty(),
			Focused:  index == nav.Index(),
			TabIndex: nav.TabIndex(index),
			Label:    CellLabel(index, mark),
		}
	}

	return screen
}

// CellLabel - "Row r, column c, X|O|empty" with 1-based row and column.
func CellLabel(index int, mark entity.Mark) string {
	row, col := entity.CellPosition(index)

	value := string(mark)
	if mark.IsEmpty() {
		value = "empty"
	}

	return fmt.Sprintf("Row %d, column %d, %s", row+1, col+1, value)
}
