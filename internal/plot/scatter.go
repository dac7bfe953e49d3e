// Package plot renders scatter series as SVG documents.
package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
)

const (
	width  = 900
	height = 640

	marginLeft   = 90
	marginRight  = 30
	marginTop    = 60
	marginBottom = 70

	ticks        = 5
	markerRadius = 5

	baseFill      = "steelblue"
	highlightFill = "crimson"
)

// vmap maps value from [low1, high1] onto [low2, high2].
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// axisRange is the data interval one axis covers.
type axisRange struct {
	min, max float64
}

func rangeOf(points []stats.Point, pick func(stats.Point) float64) axisRange {
	if len(points) == 0 {
		return axisRange{0, 1}
	}
	r := axisRange{pick(points[0]), pick(points[0])}
	for _, p := range points[1:] {
		v := pick(p)
		r.min = min(r.min, v)
		r.max = max(r.max, v)
	}
	// Anchor at zero when all values are positive so magnitudes read correctly.
	if r.min > 0 {
		r.min = 0
	}
	if r.max == r.min {
		r.max = r.min + 1
	}
	pad := (r.max - r.min) * 0.05
	return axisRange{r.min, r.max + pad}
}

// WriteScatter renders s as a complete SVG document on w.
func WriteScatter(w io.Writer, s stats.Series) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	xr := rangeOf(s.Points, func(p stats.Point) float64 { return p.X })
	yr := rangeOf(s.Points, func(p stats.Point) float64 { return p.Y })

	left, right := float64(marginLeft), float64(width-marginRight)
	top, bottom := float64(marginTop), float64(height-marginBottom)
	px := func(v float64) int { return int(vmap(v, xr.min, xr.max, left, right)) }
	py := func(v float64) int { return int(vmap(v, yr.min, yr.max, bottom, top)) }

	canvas.Start(width, height)
	canvas.Title(s.Title)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Gstyle("font-family:Calibri,sans-serif;font-size:14px;fill:dimgray")

	// grid and tick labels
	for i := 0; i <= ticks; i++ {
		xv := xr.min + (xr.max-xr.min)*float64(i)/ticks
		yv := yr.min + (yr.max-yr.min)*float64(i)/ticks
		x, y := px(xv), py(yv)
		canvas.Line(x, int(top), x, int(bottom), "stroke:gainsboro;stroke-width:1")
		canvas.Line(int(left), y, int(right), y, "stroke:gainsboro;stroke-width:1")
		canvas.Text(x, int(bottom)+20, tickLabel(xv), "text-anchor:middle")
		canvas.Text(int(left)-8, y+5, tickLabel(yv), "text-anchor:end")
	}

	// axes
	canvas.Line(int(left), int(bottom), int(right), int(bottom), "stroke:black;stroke-width:2")
	canvas.Line(int(left), int(top), int(left), int(bottom), "stroke:black;stroke-width:2")

	canvas.Text(width/2, marginTop/2, s.Title, "text-anchor:middle;font-size:20px;fill:black")
	canvas.Text(width/2, height-20, s.XLabel, "text-anchor:middle")
	ylx, yly := 24, height/2
	canvas.Text(ylx, yly, s.YLabel, fmt.Sprintf("text-anchor:middle;transform:rotate(-90deg);transform-origin:%dpx %dpx", ylx, yly))

	fill := baseFill
	if s.Highlight {
		fill = highlightFill
	}
	canvas.Gstyle("fill-opacity:0.5;fill:" + fill)
	for _, p := range s.Points {
		canvas.Circle(px(p.X), py(p.Y), markerRadius)
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()
	return ew.err
}

// WriteScatterFile renders s to dir/<s.Name>.svg and returns the path.
func WriteScatterFile(dir string, s stats.Series) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, s.Name+".svg")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteScatter(f, s); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("render %s: %w", s.Name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func tickLabel(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
