package seismic

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mhbaharuddin/seis2d/internal/segy"
)

// DefaultSampleIntervalMicros is used when a file records no usable
// sample interval (zero or missing in both the trace and binary headers).
const DefaultSampleIntervalMicros = 1000.0

// FieldConfig enumerates which trace-header fields supply the line
// geometry, plus the manual adjustments to apply. The zero value is not
// useful; start from DefaultFieldConfig.
type FieldConfig struct {
	XField int `json:"x_field"`
	YField int `json:"y_field"`

	// CDPField nil means CDP is synthesized as 0..trace_count-1.
	CDPField *int `json:"cdp_field,omitempty"`

	// ScalarField nil means coordinates pass through unscaled.
	ScalarField *int `json:"scalar_field,omitempty"`

	// ScalarOverride, when set, multiplies X and Y after scalar
	// normalization. Applied after, not instead of, the file's scalar.
	ScalarOverride *float64 `json:"scalar_override,omitempty"`

	XOffset float64 `json:"x_offset,omitempty"`
	YOffset float64 `json:"y_offset,omitempty"`

	CoordinateUnits string `json:"coordinate_units,omitempty"`
}

// DefaultFieldConfig returns the standard SEG-Y field assignments:
// SourceX/SourceY coordinates, CDP trace numbering and the
// SourceGroupScalar coordinate scalar.
func DefaultFieldConfig() FieldConfig {
	cdp := segy.DefaultCDPField
	scalar := segy.DefaultScalarField
	return FieldConfig{
		XField:          segy.DefaultXField,
		YField:          segy.DefaultYField,
		CDPField:        &cdp,
		ScalarField:     &scalar,
		CoordinateUnits: "m",
	}
}

// LoadLine loads one SEG-Y file into a Line using the given field
// configuration. A missing path surfaces as an fs.ErrNotExist wrap and a
// structurally unreadable file as a *segy.DecodeError; both are fatal for
// this file. Absent header fields are recoverable and never surface:
// coordinates fall back to zeros, CDP to synthesized indices, scalars to
// pass-through.
func LoadLine(path string, cfg FieldConfig) (*Line, error) {
	f, err := segy.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := f.ReadAllSamples()
	if err != nil {
		return nil, err
	}

	interval := f.SampleIntervalMicros()
	if interval <= 0 {
		interval = DefaultSampleIntervalMicros
	}
	times := make([]float64, f.SampleCount())
	for i := range times {
		times[i] = float64(i) * (interval / 1000.0)
	}

	var scalars []float64
	if cfg.ScalarField != nil {
		scalars, err = readAttributeOrZeros(f, *cfg.ScalarField)
		if err != nil {
			return nil, err
		}
	}

	rawX, err := readAttributeOrZeros(f, cfg.XField)
	if err != nil {
		return nil, err
	}
	rawY, err := readAttributeOrZeros(f, cfg.YField)
	if err != nil {
		return nil, err
	}
	x := scaleCoordinates(rawX, scalars, adjustment{override: cfg.ScalarOverride, offset: cfg.XOffset})
	y := scaleCoordinates(rawY, scalars, adjustment{override: cfg.ScalarOverride, offset: cfg.YOffset})

	cdp := traceIndices(f.TraceCount())
	if cfg.CDPField != nil {
		values, err := f.ReadAttribute(*cfg.CDPField)
		switch {
		case err == nil:
			cdp = values
		case !errors.Is(err, segy.ErrFieldNotFound):
			return nil, err
		}
	}

	meta := LineMetadata{
		ID:                   uuid.NewString(),
		Name:                 stem(path),
		Path:                 path,
		TraceCount:           f.TraceCount(),
		SampleCount:          f.SampleCount(),
		SampleIntervalMicros: interval,
		SampleUnits:          "ms",
		CoordinateUnits:      cfg.CoordinateUnits,
		XField:               segy.FieldName(cfg.XField),
		YField:               segy.FieldName(cfg.YField),
		ScalarOverride:       cfg.ScalarOverride,
		XOffset:              cfg.XOffset,
		YOffset:              cfg.YOffset,
	}
	if cfg.CDPField != nil {
		meta.CDPField = segy.FieldName(*cfg.CDPField)
	}
	if cfg.ScalarField != nil {
		meta.ScalarField = segy.FieldName(*cfg.ScalarField)
	}

	return &Line{
		Metadata: meta,
		Samples:  samples,
		TimesMS:  times,
		Distance: cumulativeDistance(x, y),
		X:        x,
		Y:        y,
		CDP:      cdp,
	}, nil
}

// readAttributeOrZeros reads one header field per trace, substituting a
// zero array when the field is absent from this file's layout. Read
// failures other than field absence are fatal.
func readAttributeOrZeros(f *segy.File, code int) ([]float64, error) {
	values, err := f.ReadAttribute(code)
	if errors.Is(err, segy.ErrFieldNotFound) {
		return make([]float64, f.TraceCount()), nil
	}
	return values, err
}

// traceIndices synthesizes a CDP axis of 0..n-1.
func traceIndices(n int) []float64 {
	indices := make([]float64, n)
	for i := range indices {
		indices[i] = float64(i)
	}
	return indices
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadError records one file that failed during a batch load.
type LoadError struct {
	Path string
	Err  error
}

func (e LoadError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e LoadError) Unwrap() error { return e.Err }

// LoadMany loads a batch of files sequentially, deriving each line's name
// from its file stem and making names unique by appending _2, _3, ... in
// insertion order. Failed files are collected and reported alongside the
// lines that did load, so one bad file does not discard the rest of the
// batch. The returned map is owned by the caller.
func LoadMany(paths []string, cfg FieldConfig) (map[string]*Line, []LoadError) {
	lines := make(map[string]*Line, len(paths))
	var failures []LoadError
	for _, path := range paths {
		line, err := LoadLine(path, cfg)
		if err != nil {
			failures = append(failures, LoadError{Path: path, Err: err})
			continue
		}
		name := uniqueName(lines, line.Metadata.Name)
		line.Metadata.Name = name
		lines[name] = line
	}
	return lines, failures
}

// uniqueName resolves a base name against the names already present,
// appending _2, _3, ... until unused.
func uniqueName(lines map[string]*Line, base string) string {
	name := base
	for counter := 1; ; counter++ {
		if _, taken := lines[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s_%d", base, counter+1)
	}
}
