// Package pipeline runs an uploaded image through the modulator and the
// histogram comparator.
//
// It owns everything the pixel packages leave to the caller: file name
// checks, the upload size limit, decoding, parameter defaults and PNG
// encoding of the results. A [Processor] is configured once with functional
// options and may be shared between goroutines.
package pipeline
