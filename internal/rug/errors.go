package rug

import "errors"

var (
	ErrInvalidDimensions   = errors.New("invalid rug dimensions")
	ErrUnknownMotif        = errors.New("unknown motif")
	ErrUnknownPlacement    = errors.New("unknown placement mode")
	ErrInvalidCharacterSet = errors.New("invalid character set")
)
