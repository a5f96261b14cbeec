package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game already over")
	ErrCellOccupied = errors.New("cell occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidTheme = errors.New("invalid theme")
)
