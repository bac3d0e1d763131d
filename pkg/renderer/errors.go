package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image width and height must both be at least 2")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be at least 1")
	ErrMissingMaterial   = errors.New("renderer: hit entity has no material")
	ErrNoWorld           = errors.New("renderer: no world defined")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
