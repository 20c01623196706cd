// Package render produces offline visualizations of loaded seismic lines:
// cross-section images and map-view charts. It only reads Line data and
// never participates in decoding or scaling.
package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

// sectionGrid adapts a Line's amplitude grid to the plotter.GridXYZ
// interface: columns are traces positioned by cumulative distance, rows
// are samples positioned by time.
type sectionGrid struct {
	line *seismic.Line
}

func (g sectionGrid) Dims() (c, r int) {
	return g.line.Metadata.TraceCount, g.line.Metadata.SampleCount
}

func (g sectionGrid) Z(c, r int) float64 { return float64(g.line.Samples[c][r]) }

func (g sectionGrid) X(c int) float64 { return g.line.Distance[c] }

func (g sectionGrid) Y(r int) float64 { return g.line.TimesMS[r] }

// Section renders the line's cross-section to a PNG file.
func Section(line *seismic.Line, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create section file: %w", err)
	}
	defer f.Close()
	return WriteSection(line, f)
}

// WriteSection renders the line's amplitude grid as a cross-section PNG
// with distance along X and two-way time increasing downwards. Amplitudes
// are mapped through a diverging palette centred on zero so polarity reads
// correctly.
func WriteSection(line *seismic.Line, w io.Writer) error {
	if line.Metadata.TraceCount == 0 || line.Metadata.SampleCount == 0 {
		return fmt.Errorf("render section %s: line is empty", line.Metadata.Name)
	}

	h := plotter.NewHeatMap(sectionGrid{line: line}, moreland.SmoothBlueRed().Palette(255))
	lo, hi := line.AmplitudeRange()
	limit := math.Max(math.Abs(lo), math.Abs(hi))
	if limit == 0 {
		limit = 1
	}
	h.Min, h.Max = -limit, limit

	p := plot.New()
	p.Title.Text = line.Metadata.Name
	p.X.Label.Text = fmt.Sprintf("Distance (%s)", line.Metadata.CoordinateUnits)
	p.Y.Label.Text = "Time (ms)"
	// Seismic sections draw time downwards.
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(h)

	wt, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render section plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write section plot: %w", err)
	}
	return nil
}
