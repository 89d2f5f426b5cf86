package cats

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidID    = errors.New("id must be 10 characters long, using only C/A/T and digits")
	ErrNoSelection  = errors.New("please select a cat first")
	ErrNotFound     = errors.New("cat not found")
)
