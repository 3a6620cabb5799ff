package renderer

import "errors"

var (
	ErrNoWorkers    = errors.New("renderer: no workers available")
	ErrInterrupted  = errors.New("renderer: interrupted while rendering")
	ErrInvalidFrame = errors.New("renderer: invalid frame size")
	ErrInvalidGamma = errors.New("renderer: gamma must be positive")
)
