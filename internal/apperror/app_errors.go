package apperror

import "errors"

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellEmpty        = errors.New("cell is empty")
	ErrInputClosed      = errors.New("input closed")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownPlayer    = errors.New("unknown player")
)
