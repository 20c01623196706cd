// Package seismic loads 2D seismic lines from SEG-Y files into an
// in-memory model of amplitudes and derived geometry, ready for
// visualization and further processing.
package seismic

import "math"

// LineMetadata records the identity and provenance of one loaded line,
// including which trace-header fields supplied the geometry and every
// manual adjustment applied at load time.
type LineMetadata struct {
	ID   string `json:"id"`
	Name string `json:"name"` // Unique within a loaded set; rewritten on collision
	Path string `json:"path"`

	TraceCount           int     `json:"trace_count"`
	SampleCount          int     `json:"sample_count"`
	SampleIntervalMicros float64 `json:"sample_interval_us"`
	SampleUnits          string  `json:"sample_units"`
	CoordinateUnits      string  `json:"coordinate_units"`

	// Resolved names of the header fields used for geometry.
	XField      string `json:"x_field"`
	YField      string `json:"y_field"`
	CDPField    string `json:"cdp_field,omitempty"`
	ScalarField string `json:"scalar_field,omitempty"`

	// Manual adjustments applied after scalar normalization.
	ScalarOverride *float64 `json:"scalar_override,omitempty"`
	XOffset        float64  `json:"x_offset,omitempty"`
	YOffset        float64  `json:"y_offset,omitempty"`
}

// Line holds one loaded 2D seismic line: the amplitude grid plus the time
// and spatial axes derived from it. All trace-indexed slices share length
// Metadata.TraceCount; TimesMS has length Metadata.SampleCount. A Line is
// immutable after assembly except for Metadata.Name, which the multi-file
// loader rewrites to resolve collisions.
type Line struct {
	Metadata LineMetadata `json:"metadata"`

	Samples  [][]float32 `json:"-"`        // traces x samples amplitude grid
	TimesMS  []float64   `json:"times_ms"` // 0, dt, 2dt, ... in milliseconds
	Distance []float64   `json:"distance"` // cumulative along-line distance
	X        []float64   `json:"x"`
	Y        []float64   `json:"y"`
	CDP      []float64   `json:"cdp"`
}

// AmplitudeRange returns the minimum and maximum sample values, skipping
// NaNs. A line with no finite samples returns (0, 0).
func (l *Line) AmplitudeRange() (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, trace := range l.Samples {
		for _, v := range trace {
			f := float64(v)
			if math.IsNaN(f) {
				continue
			}
			if f < min {
				min = f
			}
			if f > max {
				max = f
			}
		}
	}
	if min > max {
		return 0, 0
	}
	return min, max
}

// Length returns the along-line length, i.e. the last cumulative distance.
func (l *Line) Length() float64 {
	if len(l.Distance) == 0 {
		return 0
	}
	return l.Distance[len(l.Distance)-1]
}
