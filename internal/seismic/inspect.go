package seismic

import (
	"errors"

	"github.com/mhbaharuddin/seis2d/internal/segy"
)

// FileInfo is a read-only inspection summary of a SEG-Y file, used to let
// an operator look at a file before committing to a field configuration.
// It never feeds back into line construction.
type FileInfo struct {
	Path                 string         `json:"path"`
	TraceCount           int            `json:"trace_count"`
	SampleCount          int            `json:"sample_count"`
	SampleIntervalMicros float64        `json:"sample_interval_us"`
	TextHeader           string         `json:"text_header"`
	BinaryHeader         map[string]int `json:"binary_header"`
}

// HeaderPreview is a read-only diagnostic view of one trace-header field:
// its resolved name and the raw values from the first few traces.
type HeaderPreview struct {
	Field  int       `json:"field"`
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Inspect opens a file independently of any load and summarizes its
// structure: counts, interval, decoded text header and the binary-header
// key/value view.
func Inspect(path string) (*FileInfo, error) {
	f, err := segy.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	text, err := f.TextHeader()
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		Path:                 path,
		TraceCount:           f.TraceCount(),
		SampleCount:          f.SampleCount(),
		SampleIntervalMicros: f.SampleIntervalMicros(),
		TextHeader:           text,
		BinaryHeader:         f.BinaryHeaderSummary(),
	}, nil
}

// PreviewHeader reads up to maxTraces raw values of one trace-header
// field. A field absent from the file yields an empty Values slice, not an
// error: the caller treats empty as "no data to preview".
func PreviewHeader(path string, field, maxTraces int) (*HeaderPreview, error) {
	f, err := segy.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	preview := &HeaderPreview{
		Field:  field,
		Name:   segy.FieldName(field),
		Values: []float64{},
	}
	values, err := f.ReadAttribute(field)
	if errors.Is(err, segy.ErrFieldNotFound) {
		return preview, nil
	}
	if err != nil {
		return nil, err
	}
	if maxTraces > 0 && len(values) > maxTraces {
		values = values[:maxTraces]
	}
	preview.Values = values
	return preview, nil
}
