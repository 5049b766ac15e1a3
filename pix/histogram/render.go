package histogram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/algo-lumamod/pix/core"
)

const (
	defaultWidth  = 1200
	defaultHeight = 400

	marginLeft   = 84
	marginRight  = 24
	marginTop    = 40
	marginBottom = 62

	barOpacity  = 0.7
	gridOpacity = 0.3
	tickLen     = 4
	xTickStep   = 50
	yTickTarget = 5
	dpi         = 100
)

var (
	white     = colorful.Color{R: 1, G: 1, B: 1}
	barBlue   = colorful.Color{R: 0, G: 0, B: 1}
	barRed    = colorful.Color{R: 1, G: 0, B: 0}
	inkColor  = color.RGBA{A: 0xff}
	gridColor = color.NRGBA{A: uint8(math.Round(gridOpacity * 255))}
)

var (
	fontOnce sync.Once
	regular  *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		regular, fontErr = truetype.Parse(goregular.TTF)
	})
	return regular, fontErr
}

// Option configures rendering.
type Option func(*renderConfig)

type renderConfig struct {
	width, height int
	titles        [2]string
	xLabel        string
	yLabel        string
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		width:  defaultWidth,
		height: defaultHeight,
		titles: [2]string{"Brightness distribution (original)", "Brightness distribution (modulated)"},
		xLabel: "Brightness",
		yLabel: "Density",
	}
}

// WithSize sets the output size in pixels. Values below 200x120 are ignored.
func WithSize(width, height int) Option {
	return func(c *renderConfig) {
		if width >= 200 && height >= 120 {
			c.width = width
			c.height = height
		}
	}
}

// WithTitles sets the panel titles.
func WithTitles(original, modulated string) Option {
	return func(c *renderConfig) {
		c.titles = [2]string{original, modulated}
	}
}

// WithAxisLabels sets the x and y axis labels of both panels.
func WithAxisLabels(x, y string) Option {
	return func(c *renderConfig) {
		c.xLabel = x
		c.yLabel = y
	}
}

func applyOptions(opts []Option) renderConfig {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Render draws the two histograms side by side (original blue on the left,
// modulated red on the right) and returns the PNG encoding. Output depends
// only on the inputs and options.
func Render(original, modulated *Histogram, opts ...Option) ([]byte, error) {
	if original == nil || modulated == nil {
		return nil, fmt.Errorf("histogram: nil histogram: %w", core.ErrInvalidImage)
	}
	cfg := applyOptions(opts)

	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("histogram: parse font: %w", err)
	}
	faces := newFaceSet(f)
	defer faces.Close()

	canvas := image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	half := cfg.width / 2
	panels := []struct {
		hist  *Histogram
		area  image.Rectangle
		title string
		bar   colorful.Color
	}{
		{original, image.Rect(0, 0, half, cfg.height), cfg.titles[0], barBlue},
		{modulated, image.Rect(half, 0, cfg.width, cfg.height), cfg.titles[1], barRed},
	}

	for _, p := range panels {
		drawPanel(canvas, p.area, p.hist, p.title, white.BlendRgb(p.bar, barOpacity), cfg, faces)
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("histogram: encode: %w", err)
	}
	return out.Bytes(), nil
}

type faceSet struct {
	title, label, tick font.Face
}

// Faces cache glyphs and are not safe for concurrent use, so each Render
// call builds its own.
func newFaceSet(f *truetype.Font) *faceSet {
	face := func(size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	}
	return &faceSet{title: face(12), label: face(10), tick: face(8)}
}

func (s *faceSet) Close() {
	s.title.Close()
	s.label.Close()
	s.tick.Close()
}

// plotRect returns the data area of a full-height panel spanning columns
// [x0, x1).
func plotRect(x0, x1, height int) image.Rectangle {
	return image.Rect(x0+marginLeft, marginTop, x1-marginRight, height-marginBottom)
}

type plotArea struct {
	rect image.Rectangle
	yMax float64
}

func (a plotArea) px(v float64) int {
	return a.rect.Min.X + int(math.Round(v/255*float64(a.rect.Dx()-1)))
}

func (a plotArea) py(d float64) int {
	return a.rect.Max.Y - 1 - int(math.Round(d/a.yMax*float64(a.rect.Dy()-1)))
}

func drawPanel(dst *image.RGBA, area image.Rectangle, h *Histogram, title string, bar colorful.Color, cfg renderConfig, faces *faceSet) {
	yStep, yMax := yScale(h.Peak)
	plot := plotArea{
		rect: plotRect(area.Min.X, area.Max.X, area.Dy()),
		yMax: yMax,
	}
	r := plot.rect

	r8, g8, b8 := bar.RGB255()
	barFill := image.NewUniform(color.RGBA{R: r8, G: g8, B: b8, A: 0xff})
	for i := 0; i < Bins; i++ {
		if h.Density[i] <= 0 {
			continue
		}
		x0, x1 := plot.px(h.Edges[i]), plot.px(h.Edges[i+1])
		if x1 <= x0 {
			x1 = x0 + 1
		}
		y0 := plot.py(math.Min(h.Density[i], yMax))
		xdraw.Draw(dst, image.Rect(x0, y0, x1, r.Max.Y), barFill, image.Point{}, xdraw.Over)
	}

	grid := image.NewUniform(gridColor)
	ink := image.NewUniform(inkColor)
	decimals := tickDecimals(yStep)

	for v := 0; v <= 255; v += xTickStep {
		x := plot.px(float64(v))
		xdraw.Draw(dst, image.Rect(x, r.Min.Y, x+1, r.Max.Y), grid, image.Point{}, xdraw.Over)
		xdraw.Draw(dst, image.Rect(x, r.Max.Y, x+1, r.Max.Y+tickLen), ink, image.Point{}, xdraw.Over)
		label := strconv.Itoa(v)
		drawText(dst, faces.tick, label, x-textWidth(faces.tick, label)/2, r.Max.Y+tickLen+ascent(faces.tick)+2)
	}

	for i := 0; ; i++ {
		v := float64(i) * yStep
		if v > yMax+yStep/2 {
			break
		}
		y := plot.py(v)
		xdraw.Draw(dst, image.Rect(r.Min.X, y, r.Max.X, y+1), grid, image.Point{}, xdraw.Over)
		xdraw.Draw(dst, image.Rect(r.Min.X-tickLen, y, r.Min.X, y+1), ink, image.Point{}, xdraw.Over)
		label := strconv.FormatFloat(v, 'f', decimals, 64)
		drawText(dst, faces.tick, label, r.Min.X-tickLen-3-textWidth(faces.tick, label), y+ascent(faces.tick)/2)
	}

	drawFrame(dst, r, ink)

	cx := (area.Min.X + area.Max.X) / 2
	drawText(dst, faces.title, title, cx-textWidth(faces.title, title)/2, area.Min.Y+marginTop/2+ascent(faces.title)/2)

	plotCX := (r.Min.X + r.Max.X) / 2
	drawText(dst, faces.label, cfg.xLabel, plotCX-textWidth(faces.label, cfg.xLabel)/2, area.Max.Y-10)
	drawVerticalText(dst, faces.label, cfg.yLabel, area.Min.X+16, (r.Min.Y+r.Max.Y)/2)
}

func drawFrame(dst *image.RGBA, r image.Rectangle, ink image.Image) {
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		xdraw.Draw(dst, e, ink, image.Point{}, xdraw.Src)
	}
}

func drawText(dst xdraw.Image, face font.Face, s string, x, baseline int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(inkColor),
		Face: face,
		Dot:  freetype.Pt(x, baseline),
	}
	d.DrawString(s)
}

// drawVerticalText draws s rotated 90° counter-clockwise, centered on (cx, cy).
func drawVerticalText(dst *image.RGBA, face font.Face, s string, cx, cy int) {
	if s == "" {
		return
	}
	m := face.Metrics()
	w := textWidth(face, s)
	h := (m.Ascent + m.Descent).Ceil()

	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(inkColor),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)

	rot := imaging.Rotate90(tmp)
	at := image.Pt(cx-h/2, cy-w/2)
	xdraw.Draw(dst, rot.Bounds().Add(at), rot, image.Point{}, xdraw.Over)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// yScale picks a tick step near peak/5 from the 1-2-5 series and the axis
// top as the next multiple of it above the peak plus 5% headroom.
func yScale(peak float64) (step, top float64) {
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return 0.2, 1
	}
	target := peak * 1.05
	step = niceStep(target / yTickTarget)
	top = math.Ceil(target/step) * step
	return step, top
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

func tickDecimals(step float64) int {
	d := -int(math.Floor(math.Log10(step) + 1e-9))
	if d < 0 {
		return 0
	}
	return d
}
