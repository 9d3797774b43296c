package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Point is one (x, y) sample of a chart series.
type Point struct {
	X float64
	Y float64
}

// Series is a labeled sequence of points rendered as one polyline.
type Series struct {
	Label  string
	Color  color.RGBA // zero value picks from the default palette
	Points []Point
}

// ChartSpec describes a single line chart.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	Width  int // pixels; 0 uses DefaultChartWidth
	Height int // pixels; 0 uses DefaultChartHeight
	Series []Series
}

// Default chart dimensions, sized for side-by-side panels in the report.
const (
	DefaultChartWidth  = 640
	DefaultChartHeight = 400
)

// Chart margins leave room for the title, tick labels, and axis labels.
const (
	marginLeft   = 80
	marginRight  = 24
	marginTop    = 36
	marginBottom = 52
)

var (
	chartBackground = color.RGBA{255, 255, 255, 255}
	axisColor       = color.RGBA{60, 60, 60, 255}
	gridColor       = color.RGBA{225, 225, 225, 255}
	textColor       = color.RGBA{30, 30, 30, 255}

	// palette cycles when a series does not set its own color.
	palette = []color.RGBA{
		{31, 119, 180, 255},  // blue
		{214, 39, 40, 255},   // red
		{44, 160, 44, 255},   // green
		{148, 103, 189, 255}, // purple
	}
)

// LineChart renders the spec into an RGBA image: axes, horizontal grid lines,
// tick labels, one polyline per series, and a legend when more than one
// series is present.
func LineChart(spec ChartSpec) (*image.RGBA, error) {
	if len(spec.Series) == 0 {
		return nil, errors.New("line chart: no series")
	}
	for _, s := range spec.Series {
		if len(s.Points) == 0 {
			return nil, fmt.Errorf("line chart: series %q has no points", s.Label)
		}
	}

	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(chartBackground), image.Point{}, draw.Src)

	plot := image.Rect(marginLeft, marginTop, width-marginRight, height-marginBottom)
	xMin, xMax, yMax := dataBounds(spec.Series)

	drawGridAndTicks(img, plot, xMin, xMax, yMax)
	drawAxes(img, plot)

	for i, s := range spec.Series {
		col := s.Color
		if col == (color.RGBA{}) {
			col = palette[i%len(palette)]
		}
		drawSeries(img, plot, s, col, xMin, xMax, yMax)
	}

	drawText(img, spec.Title, plot.Min.X, 20, textColor)
	if spec.XLabel != "" {
		drawText(img, spec.XLabel, plot.Min.X+(plot.Dx()-textWidth(spec.XLabel))/2, height-10, textColor)
	}
	if spec.YLabel != "" {
		drawText(img, spec.YLabel, 4, marginTop-10, textColor)
	}
	if len(spec.Series) > 1 {
		drawLegend(img, plot, spec.Series)
	}

	return img, nil
}

// dataBounds computes the shared axis ranges across every series. The y axis
// always starts at zero: the report plots non-negative counts and truncated
// baselines overstate variation.
func dataBounds(series []Series) (xMin, xMax, yMax float64) {
	xMin = math.Inf(1)
	xMax = math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			xMin = math.Min(xMin, p.X)
			xMax = math.Max(xMax, p.X)
			yMax = math.Max(yMax, p.Y)
		}
	}
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax <= 0 {
		yMax = 1
	}
	return xMin, xMax, yMax
}

func drawAxes(img *image.RGBA, plot image.Rectangle) {
	drawLine(img, plot.Min.X, plot.Min.Y, plot.Min.X, plot.Max.Y, axisColor) // y axis
	drawLine(img, plot.Min.X, plot.Max.Y, plot.Max.X, plot.Max.Y, axisColor) // x axis
}

func drawGridAndTicks(img *image.RGBA, plot image.Rectangle, xMin, xMax, yMax float64) {
	const yTicks = 5
	for i := 0; i <= yTicks; i++ {
		v := yMax * float64(i) / yTicks
		y := plot.Max.Y - int(float64(plot.Dy())*float64(i)/yTicks)
		if i > 0 {
			drawLine(img, plot.Min.X, y, plot.Max.X, y, gridColor)
		}
		label := humanize.CommafWithDigits(v, 0)
		drawText(img, label, plot.Min.X-textWidth(label)-6, y+4, textColor)
	}

	// Integer x ticks (years), thinned to at most eight labels.
	span := int(xMax - xMin)
	step := 1
	for span/step > 8 {
		step *= 2
	}
	for v := int(xMin); v <= int(xMax); v += step {
		x := plot.Min.X + int(float64(plot.Dx())*(float64(v)-xMin)/(xMax-xMin))
		drawLine(img, x, plot.Max.Y, x, plot.Max.Y+4, axisColor)
		label := fmt.Sprintf("%d", v)
		drawText(img, label, x-textWidth(label)/2, plot.Max.Y+18, textColor)
	}
}

func drawSeries(img *image.RGBA, plot image.Rectangle, s Series, col color.RGBA, xMin, xMax, yMax float64) {
	toPixel := func(p Point) (int, int) {
		x := plot.Min.X + int(float64(plot.Dx())*(p.X-xMin)/(xMax-xMin))
		y := plot.Max.Y - int(float64(plot.Dy())*p.Y/yMax)
		return x, y
	}

	for i := 1; i < len(s.Points); i++ {
		x0, y0 := toPixel(s.Points[i-1])
		x1, y1 := toPixel(s.Points[i])
		drawLine(img, x0, y0, x1, y1, col)
	}

	// Mark each sample so single-point series stay visible.
	for _, p := range s.Points {
		x, y := toPixel(p)
		drawMarker(img, x, y, col)
	}
}

func drawLegend(img *image.RGBA, plot image.Rectangle, series []Series) {
	x := plot.Max.X - 140
	y := plot.Min.Y + 14
	for i, s := range series {
		col := s.Color
		if col == (color.RGBA{}) {
			col = palette[i%len(palette)]
		}
		drawLine(img, x, y-4, x+18, y-4, col)
		drawText(img, s.Label, x+24, y, textColor)
		y += 16
	}
}

// drawLine draws a straight segment by stepping along the longer axis.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		img.SetRGBA(x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		img.SetRGBA(x, y, col)
	}
}

func drawMarker(img *image.RGBA, x, y int, col color.RGBA) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			img.SetRGBA(x+dx, y+dy, col)
		}
	}
}

// drawText draws text at the given position with the fixed basicfont face.
func drawText(img *image.RGBA, text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// textWidth returns the pixel width of text in the fixed 7px face.
func textWidth(text string) int {
	return 7 * len(text)
}

// EncodePNG serializes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img and writes it to path.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
