package modulate_test

import (
	"fmt"

	"github.com/cwbudde/algo-lumamod/pix/modulate"
	"github.com/cwbudde/algo-lumamod/pix/raster"
	"github.com/cwbudde/algo-lumamod/pix/wave"
)

func ExampleModulate() {
	src, _ := raster.Filled(4, 1, 255, 255, 255)

	out, err := modulate.Modulate(src, modulate.Params{
		Axis:     modulate.AxisY,
		Waveform: wave.Sine,
		Period:   4,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for y := 0; y < out.Height; y++ {
		r, _, _ := out.At(0, y)
		fmt.Print(r, " ")
	}
	fmt.Println()

	// Output:
	// 128 255 128 0
}
