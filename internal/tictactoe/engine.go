package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

const (
	msgTurn     = "%s's turn."
	msgWin      = "%s wins! Press Restart to play again."
	msgDraw     = "It's a draw. Press Restart to play again."
	msgGameOver = "Game over. Press Restart to play again."
	msgTaken    = "That cell is taken. %s's turn."
)

// Engine - owns one game and the status line shown for it.
type Engine struct {
	game    entity.Game
	message string
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Restart()

	return engine
}

// Restart - resets board, turn and status together.
func (that *Engine) Restart() {
	that.game = *entity.NewGame()
	that.message = fmt.Sprintf(msgTurn, that.game.Turn)
}

// AttemptMove - plays the current player's mark at index.
// A rejected move returns the reason and only changes the status message.
func (that *Engine) AttemptMove(index int) error {
	err := that.game.MakeTurn(index)

	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		that.message = msgGameOver
		return err
	case errors.Is(err, apperror.ErrCellOccupied):
		that.message = fmt.Sprintf(msgTaken, that.game.Turn)
		return err
	case err != nil:
		return fmt.Errorf("invalid move: %w", err)
	}

	that.message = describe(&that.game)

	return nil
}

func describe(game *entity.Game) string {
	switch game.Status {
	case entity.StatusWon:
		return fmt.Sprintf(msgWin, game.Winner)
	case entity.StatusDraw:
		return msgDraw
	default:
		return fmt.Sprintf(msgTurn, game.Turn)
	}
}

// StatusMessage - the text for the status line.
func (that *Engine) StatusMessage() string {
	return that.message
}

// Board - returns a copy of the cells.
func (that *Engine) Board() entity.Board {
	return that.game.Board
}

func (that *Engine) Cell(index int) entity.Mark {
	if !entity.IsValidCell(index) {
		return entity.EmptyCell
	}
	return that.game.Board[index]
}

func (that *Engine) Turn() entity.Mark {
	return that.game.Turn
}

func (that *Engine) Status() entity.Status {
	return that.game.Status
}

func (that *Engine) Winner() entity.Mark {
	return that.game.Winner
}

// WinningLine - the completed line, only while the game is won.
func (that *Engine) WinningLine() ([3]int, bool) {
	if that.game.Status != entity.StatusWon {
		return [3]int{}, false
	}
	return that.game.WinLine, true
}

func (that *Engine) IsOver() bool {
	return that.game.IsFinished()
}

// IsWinningCell - reports whether index lies on the completed line.
func (that *Engine) IsWinningCell(index int) bool {
	line, ok := that.WinningLine()
	if !ok {
		return false
	}

	for _, cell := range line {
		if cell == index {
			return true
		}
	}

	return false
}
