package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lumamod/pix/raster"
)

// Uniform returns an image where every pixel has the color (r, g, b).
func Uniform(height, width int, r, g, b uint8) *raster.Buffer {
	buf, err := raster.Filled(height, width, r, g, b)
	if err != nil {
		panic(err)
	}
	return buf
}

// DeterministicNoise returns an image of uniformly random samples drawn from
// a fixed seed.
func DeterministicNoise(seed int64, height, width int) *raster.Buffer {
	buf := Uniform(height, width, 0, 0, 0)
	rng := rand.New(rand.NewSource(seed))
	for i := range buf.Pix {
		buf.Pix[i] = uint8(rng.Intn(256))
	}
	return buf
}

// Gradient returns an image whose red channel ramps 0..255 across columns,
// green ramps across rows and blue is constant.
func Gradient(height, width int, blue uint8) *raster.Buffer {
	buf := Uniform(height, width, 0, 0, blue)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, ramp(x, width), ramp(y, height), blue)
		}
	}
	return buf
}

func ramp(i, n int) uint8 {
	if n <= 1 {
		return 0
	}
	return uint8(math.Round(255 * float64(i) / float64(n-1)))
}
