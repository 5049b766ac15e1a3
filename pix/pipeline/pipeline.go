package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-lumamod/pix/histogram"
	"github.com/cwbudde/algo-lumamod/pix/modulate"
	"github.com/cwbudde/algo-lumamod/pix/raster"
	lumastats "github.com/cwbudde/algo-lumamod/stats/luma"
	"github.com/cwbudde/algo-lumamod/stats/spatial"
)

// DefaultMaxUploadBytes is the upload limit used when none is configured.
const DefaultMaxUploadBytes int64 = 16 << 20

// Option configures a Processor.
type Option func(*Processor)

// WithMaxUploadBytes limits the accepted body size. Values <= 0 keep the
// default.
func WithMaxUploadBytes(n int64) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxUpload = n
		}
	}
}

// WithLogger sets the logger used for per-request debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) {
		p.log = l
	}
}

// WithRenderOptions passes options through to the histogram renderer.
func WithRenderOptions(opts ...histogram.Option) Option {
	return func(p *Processor) {
		p.renderOpts = append(p.renderOpts, opts...)
	}
}

// WithAutoOrientation honours the EXIF orientation of JPEG uploads.
func WithAutoOrientation() Option {
	return func(p *Processor) {
		p.decodeOpts = append(p.decodeOpts, raster.WithAutoOrientation())
	}
}

// Processor turns upload requests into modulation results.
type Processor struct {
	maxUpload  int64
	log        zerolog.Logger
	renderOpts []histogram.Option
	decodeOpts []raster.DecodeOption

	comparator *histogram.Comparator
}

// New creates a Processor. Without options it accepts up to 16 MiB and
// does not log.
func New(opts ...Option) *Processor {
	p := &Processor{
		maxUpload: DefaultMaxUploadBytes,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.comparator = histogram.NewComparator(p.renderOpts...)
	return p
}

// MaxUploadBytes returns the configured body limit.
func (p *Processor) MaxUploadBytes() int64 { return p.maxUpload }

// Request is one upload with its form fields.
type Request struct {
	Filename string
	Body     io.Reader
	Form     Form
}

// Result collects everything produced for one request.
type Result struct {
	Params modulate.Params

	Original     *raster.Buffer
	Modulated    *raster.Buffer
	OriginalPNG  []byte
	ModulatedPNG []byte

	Histogram *histogram.Result

	OriginalStats  lumastats.Stats
	ModulatedStats lumastats.Stats
	// Profile describes the modulated image along the modulation axis.
	Profile spatial.Stats
}

// Process validates req, modulates the decoded image and compares the
// brightness histograms. ctx is checked between steps.
func (p *Processor) Process(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if req.Body == nil || req.Filename == "" {
		return nil, ErrMissingFile
	}
	if !AllowedFile(req.Filename) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, req.Filename)
	}

	params, err := ParseParams(req.Form)
	if err != nil {
		return nil, err
	}

	data, err := p.read(req.Body)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := raster.Decode(bytes.NewReader(data), p.decodeOpts...)
	if err != nil {
		return nil, err
	}
	p.log.Debug().
		Str("file", req.Filename).
		Int("bytes", len(data)).
		Int("width", src.Width).
		Int("height", src.Height).
		Stringer("params", params).
		Msg("decoded upload")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mod, err := modulate.Modulate(src, params)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hist, err := p.comparator.Compare(src, mod)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Params:    params,
		Original:  src,
		Modulated: mod,
		Histogram: hist,
	}
	if err := p.summarize(res); err != nil {
		return nil, err
	}

	if res.OriginalPNG, err = src.PNG(); err != nil {
		return nil, fmt.Errorf("pipeline: encode original: %w", err)
	}
	if res.ModulatedPNG, err = mod.PNG(); err != nil {
		return nil, fmt.Errorf("pipeline: encode modulated: %w", err)
	}

	p.log.Debug().
		Str("file", req.Filename).
		Float64("mean_before", res.OriginalStats.Mean).
		Float64("mean_after", res.ModulatedStats.Mean).
		Float64("dominant_period", res.Profile.DominantPeriod).
		Dur("took", time.Since(start)).
		Msg("processed upload")

	return res, nil
}

func (p *Processor) read(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, p.maxUpload+1))
	if err != nil {
		return nil, fmt.Errorf("pipeline: read upload: %w", err)
	}
	if int64(len(data)) > p.maxUpload {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrUploadTooLarge, p.maxUpload)
	}
	if len(data) == 0 {
		return nil, ErrMissingFile
	}
	return data, nil
}

func (p *Processor) summarize(res *Result) error {
	var err error
	if res.OriginalStats, err = lumastats.FromBuffer(res.Original); err != nil {
		return err
	}
	if res.ModulatedStats, err = lumastats.FromBuffer(res.Modulated); err != nil {
		return err
	}
	res.Profile, err = spatial.FromBuffer(res.Modulated, res.Params.Axis)
	return err
}
