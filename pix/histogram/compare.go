package histogram

import (
	"encoding/base64"

	"github.com/cwbudde/algo-lumamod/pix/raster"
)

// Result holds the two histograms and their side-by-side rendering.
type Result struct {
	Original  Histogram
	Modulated Histogram
	PNG       []byte
}

// DataURI returns the rendering as a base64 PNG data URI.
func (r *Result) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(r.PNG)
}

// Comparator computes and renders brightness histograms for image pairs.
// It holds only immutable options and is safe for concurrent use.
type Comparator struct {
	opts []Option
}

// NewComparator creates a comparator with the given rendering options.
func NewComparator(opts ...Option) *Comparator {
	return &Comparator{opts: append([]Option(nil), opts...)}
}

// Compare computes luma histograms of both images and renders them.
// The images may differ in size; each must be a valid RGB buffer.
func (c *Comparator) Compare(original, modulated *raster.Buffer) (*Result, error) {
	origLuma, err := Luma(original)
	if err != nil {
		return nil, err
	}
	modLuma, err := Luma(modulated)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Original:  Density(origLuma),
		Modulated: Density(modLuma),
	}

	res.PNG, err = Render(&res.Original, &res.Modulated, c.opts...)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Compare is a one-shot comparison with the given rendering options.
func Compare(original, modulated *raster.Buffer, opts ...Option) (*Result, error) {
	return NewComparator(opts...).Compare(original, modulated)
}
