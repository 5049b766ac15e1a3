package pipeline_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cwbudde/algo-lumamod/pix/pipeline"
	"github.com/cwbudde/algo-lumamod/pix/raster"
)

func ExampleProcessor_Process() {
	src, _ := raster.Filled(4, 4, 255, 255, 255)
	data, _ := src.PNG()

	res, err := pipeline.New().Process(context.Background(), pipeline.Request{
		Filename: "white.png",
		Body:     bytes.NewReader(data),
		Form:     pipeline.Form{"axis": "y", "period": "4"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	rows := make([]uint8, res.Modulated.Height)
	for y := range rows {
		rows[y], _, _ = res.Modulated.At(0, y)
	}
	fmt.Println(res.Params)
	fmt.Println(rows)
	// Output:
	// axis=y wave=sin period=4
	// [128 255 128 0]
}

func ExampleAllowedFile() {
	fmt.Println(pipeline.AllowedFile("holiday.JPEG"), pipeline.AllowedFile("notes.txt"))
	// Output: true false
}
