package core

import "errors"

// Error kinds shared by the pixel processors. Operations wrap these with
// detail; callers match them with errors.Is.
var (
	// ErrInvalidParameter reports a bad axis, waveform or period.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidImage reports a nil, empty or malformed image buffer.
	ErrInvalidImage = errors.New("invalid image")
)
