package pipeline

import "errors"

var (
	// ErrMissingFile reports a request without a file name or body.
	ErrMissingFile = errors.New("pipeline: no file uploaded")
	// ErrUnsupportedFormat reports a file name whose extension is not accepted.
	ErrUnsupportedFormat = errors.New("pipeline: unsupported file format")
	// ErrUploadTooLarge reports a body longer than the configured limit.
	ErrUploadTooLarge = errors.New("pipeline: upload too large")
)
