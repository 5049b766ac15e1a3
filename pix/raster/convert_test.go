package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/cwbudde/algo-lumamod/pix/core"
)

func TestFromImageDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	src.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	buf, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if buf.Height != 1 || buf.Width != 2 {
		t.Fatalf("shape = %dx%d, want 1x2", buf.Height, buf.Width)
	}
	if r, g, b := buf.At(0, 0); r != 200 || g != 100 || b != 50 {
		t.Fatalf("translucent pixel = (%d,%d,%d), want (200,100,50)", r, g, b)
	}
	if r, g, b := buf.At(1, 0); r != 1 || g != 2 || b != 3 {
		t.Fatalf("opaque pixel = (%d,%d,%d), want (1,2,3)", r, g, b)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.RGBA{R: 9, G: 9, B: 9, A: 255})

	buf, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if buf.Height != 2 || buf.Width != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", buf.Height, buf.Width)
	}
	if r, _, _ := buf.At(0, 0); r != 9 {
		t.Fatalf("origin pixel r = %d, want 9", r)
	}
}

func TestFromImageNil(t *testing.T) {
	if _, err := FromImage(nil); !errors.Is(err, core.ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
}

func TestImageIsOpaque(t *testing.T) {
	buf, _ := Filled(2, 2, 10, 20, 30)
	img := buf.Image()
	for _, a := range []int{3, 7, 11, 15} {
		if img.Pix[a] != 0xff {
			t.Fatalf("alpha at %d = %d, want 255", a, img.Pix[a])
		}
	}
}

func TestPNGRoundTrip(t *testing.T) {
	buf, _ := New(3, 4)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(i * 7)
	}

	data, err := buf.PNG()
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}

	got, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.SameShape(buf) || !bytes.Equal(got.Pix, buf.Pix) {
		t.Fatal("round trip changed samples")
	}
}

func TestDecodeTranslucentPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 40, G: 80, B: 120, A: 10})

	var enc bytes.Buffer
	if err := png.Encode(&enc, src); err != nil {
		t.Fatal(err)
	}

	buf, err := Decode(&enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r, g, b := buf.At(0, 0); r != 40 || g != 80 || b != 120 {
		t.Fatalf("pixel = (%d,%d,%d), want (40,80,120)", r, g, b)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	if !errors.Is(err, core.ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
}

func TestEncodePNGRejectsInvalid(t *testing.T) {
	var out bytes.Buffer
	if err := EncodePNG(&out, &Buffer{Height: 1, Width: 1}); !errors.Is(err, core.ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
}
