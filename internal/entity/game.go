package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

const (
	GridSide  = 3
	BoardSize = GridSide * GridSide
)

// WinCombos - rows, then columns, then diagonals. The order decides which line is reported.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

// FindWinner - returns the first line of WinCombos holding three equal marks.
func (that *Board) FindWinner() (Mark, [3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, combo, true
		}
	}

	return EmptyCell, [3]int{}, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// CellPosition - converts a row-major index into a zero-based (row, col) pair.
func CellPosition(index int) (int, int) {
	return index / GridSide, index % GridSide
}

func CellIndex(row, col int) int {
	return row*GridSide + col
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

type Game struct {
	Board   Board
	Turn    Mark
	Status  Status
	Winner  Mark
	WinLine [3]int
}

func NewGame() *Game {
	return &Game{
		Turn:   PlayerX,
		Status: StatusInProgress,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// UpdateGameState - derives the status from the board after a mark has been placed.
func (that *Game) UpdateGameState() {
	if winner, line, ok := that.Board.FindWinner(); ok {
		that.Status = StatusWon
		that.Winner = winner
		that.WinLine = line
		return
	}

	if that.Board.IsFull() {
		that.Status = StatusDraw
		return
	}

	that.Status = StatusInProgress
	that.Turn = that.Turn.Opponent()
}

// MakeTurn - places the current player's mark. A rejected move leaves the game untouched.
func (that *Game) MakeTurn(cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = that.Turn
	that.UpdateGameState()

	return nil
}
