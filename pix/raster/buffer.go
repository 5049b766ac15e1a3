package raster

import (
	"fmt"

	"github.com/cwbudde/algo-lumamod/pix/core"
)

// Channels is the number of samples stored per pixel.
const Channels = 3

// Buffer is an RGB raster of shape (Height, Width, 3).
type Buffer struct {
	Height int
	Width  int
	Pix    []uint8
}

// New returns a zeroed buffer of the given shape.
func New(height, width int) (*Buffer, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("raster: shape must be positive, got %dx%d: %w", height, width, core.ErrInvalidImage)
	}
	return &Buffer{
		Height: height,
		Width:  width,
		Pix:    make([]uint8, height*width*Channels),
	}, nil
}

// Filled returns a buffer where every pixel has the color (r, g, b).
func Filled(height, width int, r, g, b uint8) (*Buffer, error) {
	buf, err := New(height, width)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(buf.Pix); i += Channels {
		buf.Pix[i] = r
		buf.Pix[i+1] = g
		buf.Pix[i+2] = b
	}
	return buf, nil
}

// Validate reports whether b is non-nil, non-empty and its sample slice
// matches its shape.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("raster: nil buffer: %w", core.ErrInvalidImage)
	}
	if b.Height <= 0 || b.Width <= 0 {
		return fmt.Errorf("raster: shape must be positive, got %dx%d: %w", b.Height, b.Width, core.ErrInvalidImage)
	}
	if want := b.Height * b.Width * Channels; len(b.Pix) != want {
		return fmt.Errorf("raster: %d samples for %dx%dx%d buffer, want %d: %w",
			len(b.Pix), b.Height, b.Width, Channels, want, core.ErrInvalidImage)
	}
	return nil
}

// Stride returns the number of samples per row.
func (b *Buffer) Stride() int { return b.Width * Channels }

// Len returns the number of pixels.
func (b *Buffer) Len() int { return b.Height * b.Width }

// Row returns the samples of row y. The slice aliases b.Pix.
func (b *Buffer) Row(y int) []uint8 {
	stride := b.Stride()
	return b.Pix[y*stride : (y+1)*stride]
}

// At returns the color of the pixel at column x, row y.
func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	i := (y*b.Width + x) * Channels
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set stores the color of the pixel at column x, row y.
func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	i := (y*b.Width + x) * Channels
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

// SameShape reports whether b and o have identical height and width.
func (b *Buffer) SameShape(o *Buffer) bool {
	return b != nil && o != nil && b.Height == o.Height && b.Width == o.Width
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	return &Buffer{
		Height: b.Height,
		Width:  b.Width,
		Pix:    append([]uint8(nil), b.Pix...),
	}
}
