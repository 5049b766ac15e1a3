package histogram

import (
	"github.com/cwbudde/algo-lumamod/pix/core"
	"github.com/cwbudde/algo-lumamod/pix/raster"
)

// Luma weights for R, G and B.
const (
	WeightR = 0.299
	WeightG = 0.587
	WeightB = 0.114
)

// LumaOf returns the weighted brightness of one pixel, clamped to [0, 255].
func LumaOf(r, g, b uint8) float64 {
	return core.Clamp(WeightR*float64(r)+WeightG*float64(g)+WeightB*float64(b), 0, 255)
}

// Luma returns one brightness value per pixel in row-major order.
func Luma(buf *raster.Buffer) ([]float64, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, buf.Len())
	for i := range out {
		p := buf.Pix[i*raster.Channels:]
		out[i] = LumaOf(p[0], p[1], p[2])
	}
	return out, nil
}
