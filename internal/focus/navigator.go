package focus

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Delta - column and row offsets for the direction.
func (that Direction) Delta() (int, int) {
	switch that {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

func (that Direction) String() string {
	switch that {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(that))
	}
}

const (
	FirstCell = 0
	LastCell  = entity.BoardSize - 1
)

// Navigator - tracks the single board cell that is the sequential focus target.
type Navigator struct {
	index int
}

func NewNavigator() *Navigator {
	return &Navigator{index: FirstCell}
}

func (that *Navigator) Index() int {
	return that.index
}

// MoveFocus - shifts focus by dx columns and dy rows. Moves past an edge stay on the edge.
func (that *Navigator) MoveFocus(dx, dy int) {
	row, col := entity.CellPosition(that.index)

	row = clamp(row+dy, 0, entity.GridSide-1)
	col = clamp(col+dx, 0, entity.GridSide-1)

	that.index = entity.CellIndex(row, col)
}

func (that *Navigator) Move(direction Direction) {
	that.MoveFocus(direction.Delta())
}

func (that *Navigator) SetFocus(index int) error {
	if !entity.IsValidCell(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	that.index = index

	return nil
}

func (that *Navigator) JumpToStart() {
	that.index = FirstCell
}

func (that *Navigator) JumpToEnd() {
	that.index = LastCell
}

// TabIndex - 0 for the focused cell, -1 for every other cell.
func (that *Navigator) TabIndex(index int) int {
	if index == that.index {
		return 0
	}
	return -1
}

func clamp(value, low, high int) int {
	return min(high, max(low, value))
}
