package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-lumamod/pix/core"
	"github.com/cwbudde/algo-lumamod/pix/modulate"
	"github.com/cwbudde/algo-lumamod/pix/wave"
)

// Form field names.
const (
	FieldAxis     = "axis"
	FieldFunction = "function"
	FieldPeriod   = "period"
)

// Form holds raw, unparsed request fields.
type Form map[string]string

// Get returns the trimmed value for key, or def if it is missing or blank.
func (f Form) Get(key, def string) string {
	if f == nil {
		return def
	}

	v, ok := f[key]
	if !ok {
		return def
	}
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// ParseParams reads axis, function and period from f. Missing fields fall
// back to x, sin and 80.
func ParseParams(f Form) (modulate.Params, error) {
	def := modulate.DefaultParams()

	axis, err := modulate.ParseAxis(f.Get(FieldAxis, def.Axis.String()))
	if err != nil {
		return modulate.Params{}, err
	}

	typ, err := wave.Parse(f.Get(FieldFunction, def.Waveform.String()))
	if err != nil {
		return modulate.Params{}, err
	}

	raw := f.Get(FieldPeriod, strconv.Itoa(def.Period))
	period, err := strconv.Atoi(raw)
	if err != nil {
		return modulate.Params{}, fmt.Errorf("pipeline: period %q is not an integer: %w", raw, core.ErrInvalidParameter)
	}

	p := modulate.Params{Axis: axis, Waveform: typ, Period: period}
	if err := p.Validate(); err != nil {
		return modulate.Params{}, err
	}
	return p, nil
}

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"bmp":  {},
	"webp": {},
}

// AllowedFile reports whether name ends in an accepted image extension.
// The comparison ignores case.
func AllowedFile(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(name[i+1:])]
	return ok
}
