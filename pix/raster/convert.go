package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // GIF uploads
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/cwbudde/algo-lumamod/pix/core"
)

// FromImage copies img into a new buffer. Alpha is dropped without
// compositing.
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("raster: nil image: %w", core.ErrInvalidImage)
	}

	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()

	buf, err := New(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}

	for y := 0; y < buf.Height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+buf.Width*4]
		dst := buf.Row(y)
		for x := 0; x < buf.Width; x++ {
			dst[x*Channels] = src[x*4]
			dst[x*Channels+1] = src[x*4+1]
			dst[x*Channels+2] = src[x*4+2]
		}
	}

	return buf, nil
}

// Image returns b as an opaque NRGBA image.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		src := b.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		for x := 0; x < b.Width; x++ {
			dst[x*4] = src[x*Channels]
			dst[x*4+1] = src[x*Channels+1]
			dst[x*4+2] = src[x*Channels+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	autoOrient bool
}

// WithAutoOrientation rotates JPEG input according to its EXIF orientation tag.
func WithAutoOrientation() DecodeOption {
	return func(c *decodeConfig) {
		c.autoOrient = true
	}
}

// Decode reads an encoded image (PNG, JPEG, GIF, BMP or WebP) and converts
// it to a buffer. Malformed input yields core.ErrInvalidImage.
func Decode(r io.Reader, opts ...DecodeOption) (*Buffer, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(cfg.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("raster: decode: %w: %w", core.ErrInvalidImage, err)
	}

	return FromImage(img)
}

// EncodePNG writes b to w as PNG.
func EncodePNG(w io.Writer, b *Buffer) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return imaging.Encode(w, b.Image(), imaging.PNG)
}

// PNG returns the PNG encoding of b.
func (b *Buffer) PNG() ([]byte, error) {
	var out bytes.Buffer
	if err := EncodePNG(&out, b); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
