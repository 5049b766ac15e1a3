package testutil

import "testing"

func TestUniform(t *testing.T) {
	buf := Uniform(3, 5, 10, 20, 30)
	if err := buf.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			r, g, b := buf.At(x, y)
			if r != 10 || g != 20 || b != 30 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d)", x, y, r, g, b)
			}
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 8, 8)
	b := DeterministicNoise(7, 8, 8)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 4, 4)
	b := DeterministicNoise(2, 4, 4)
	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestGradientEndpoints(t *testing.T) {
	buf := Gradient(4, 6, 99)
	if r, g, b := buf.At(0, 0); r != 0 || g != 0 || b != 99 {
		t.Fatalf("top-left = (%d,%d,%d)", r, g, b)
	}
	if r, g, b := buf.At(5, 3); r != 255 || g != 255 || b != 99 {
		t.Fatalf("bottom-right = (%d,%d,%d)", r, g, b)
	}
}
