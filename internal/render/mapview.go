package render

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

// maxMapPoints caps the number of plotted traces per line to keep the
// generated HTML manageable for long lines.
const maxMapPoints = 5000

// Map renders a plan view of the given lines as an interactive HTML
// scatter chart: one series per line, points at the normalized (x, y)
// trace positions, coloured by cumulative along-line distance.
func Map(lines map[string]*seismic.Line, w io.Writer) error {
	if len(lines) == 0 {
		return fmt.Errorf("render map: no lines")
	}

	names := make([]string, 0, len(lines))
	for name := range lines {
		names = append(names, name)
	}
	sort.Strings(names)

	scatter := charts.NewScatter()

	// Square axes padded to the overall coordinate extent so line shapes
	// are not distorted.
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	maxDist := 0.0
	for _, name := range names {
		l := lines[name]
		for i := range l.X {
			minX = math.Min(minX, l.X[i])
			maxX = math.Max(maxX, l.X[i])
			minY = math.Min(minY, l.Y[i])
			maxY = math.Max(maxY, l.Y[i])
		}
		maxDist = math.Max(maxDist, l.Length())
	}
	pad := 0.05 * math.Max(maxX-minX, maxY-minY)
	if pad == 0 {
		pad = 1.0
	}
	if maxDist == 0 {
		maxDist = 1.0
	}

	units := ""
	for _, name := range names {
		l := lines[name]

		stride := 1
		if len(l.X) > maxMapPoints {
			stride = int(math.Ceil(float64(len(l.X)) / float64(maxMapPoints)))
		}
		data := make([]opts.ScatterData, 0, len(l.X)/stride+1)
		for i := 0; i < len(l.X); i += stride {
			data = append(data, opts.ScatterData{Value: []interface{}{l.X[i], l.Y[i], l.Distance[i]}})
		}
		scatter.AddSeries(name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
		if units == "" {
			units = l.Metadata.CoordinateUnits
		}
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Line Map", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Line Map", Subtitle: fmt.Sprintf("%d line(s)", len(names))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minX - pad, Max: maxX + pad, Name: fmt.Sprintf("X (%s)", units)}),
		charts.WithYAxisOpts(opts.YAxis{Min: minY - pad, Max: maxY + pad, Name: fmt.Sprintf("Y (%s)", units)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxDist),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#31688e", "#35b779", "#fde725"}},
		}),
	)

	return scatter.Render(w)
}
