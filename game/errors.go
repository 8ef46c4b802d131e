package game

import "github.com/pkg/errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrInvalidCell          = errors.New("cell is out of bounds")
	ErrAlreadyRevealed      = errors.New("cell is already revealed")
	ErrRoundOver            = errors.New("round is over")
	ErrInvalidLayout        = errors.New("invalid board layout")
)
