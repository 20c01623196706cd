// Package testutil builds synthetic SEG-Y files for tests. The builder
// writes structurally valid files with controllable headers and per-trace
// values so decoding, scaling, and assembly can be exercised without
// binary fixtures in the repository.
package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// SegySpec describes a synthetic SEG-Y file. Zero values mean "leave the
// header field zeroed", which is itself a case worth testing.
type SegySpec struct {
	Samples        int     // Samples per trace (binary header 3221)
	IntervalMicros int     // Binary-header sample interval (3217)
	TraceInterval  int     // First-trace-header interval field (offset 117); 0 leaves it unset
	Format         int     // Sample format code (3225); 0 defaults to IEEE float32 (5)
	Text           string  // Text header content, ASCII, zero-padded to 3200 bytes
	Traces         []Trace // One entry per trace record
}

// Trace describes one synthetic trace: its header field values (keyed by
// 1-based byte offset) and its samples.
type Trace struct {
	Header  map[int]int // field code -> value; width follows the standard catalog
	Samples []float32   // Padded or truncated to SegySpec.Samples
}

// fieldWidth returns the standard width of a trace-header field. Mirrors
// the production catalog without importing it, so a catalog bug cannot
// mask itself in fixtures.
func fieldWidth(code int) int {
	fourByte := map[int]bool{
		1: true, 5: true, 9: true, 13: true, 17: true, 21: true, 25: true,
		37: true, 41: true, 45: true, 49: true, 53: true, 57: true, 61: true, 65: true,
		73: true, 77: true, 81: true, 85: true,
		181: true, 185: true, 189: true, 193: true, 197: true, 205: true,
		219: true, 225: true, 233: true, 237: true,
	}
	if fourByte[code] {
		return 4
	}
	return 2
}

// WriteSegy writes the described file into dir and returns its path.
func WriteSegy(t *testing.T, dir, name string, spec SegySpec) string {
	t.Helper()

	format := spec.Format
	if format == 0 {
		format = 5 // IEEE float32
	}
	width := map[int]int{1: 4, 2: 4, 3: 2, 5: 4, 6: 8, 8: 1}[format]
	if width == 0 {
		t.Fatalf("unsupported fixture format %d", format)
	}

	text := make([]byte, 3200)
	copy(text, spec.Text)

	bin := make([]byte, 400)
	binary.BigEndian.PutUint16(bin[3217-3201:], uint16(spec.IntervalMicros))
	binary.BigEndian.PutUint16(bin[3221-3201:], uint16(spec.Samples))
	binary.BigEndian.PutUint16(bin[3225-3201:], uint16(format))

	data := append(append([]byte{}, text...), bin...)

	for i, trace := range spec.Traces {
		hdr := make([]byte, 240)
		if i == 0 && spec.TraceInterval != 0 {
			binary.BigEndian.PutUint16(hdr[117-1:], uint16(spec.TraceInterval))
		}
		for code, value := range trace.Header {
			switch fieldWidth(code) {
			case 2:
				binary.BigEndian.PutUint16(hdr[code-1:], uint16(int16(value)))
			default:
				binary.BigEndian.PutUint32(hdr[code-1:], uint32(int32(value)))
			}
		}
		data = append(data, hdr...)

		body := make([]byte, spec.Samples*width)
		for s := 0; s < spec.Samples; s++ {
			var v float32
			if s < len(trace.Samples) {
				v = trace.Samples[s]
			}
			switch format {
			case 3:
				binary.BigEndian.PutUint16(body[s*2:], uint16(int16(v)))
			case 5:
				binary.BigEndian.PutUint32(body[s*4:], math.Float32bits(v))
			case 6:
				binary.BigEndian.PutUint64(body[s*8:], math.Float64bits(float64(v)))
			case 8:
				body[s] = byte(int8(v))
			case 2:
				binary.BigEndian.PutUint32(body[s*4:], uint32(int32(v)))
			case 1:
				binary.BigEndian.PutUint32(body[s*4:], float32ToIBM(v))
			}
		}
		data = append(data, body...)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}

// float32ToIBM encodes an IEEE float as a 4-byte IBM System/360 float.
// Exact for the modest values tests use.
func float32ToIBM(v float32) uint32 {
	if v == 0 {
		return 0
	}
	var sign uint32
	f := float64(v)
	if f < 0 {
		sign = 0x80000000
		f = -f
	}
	// Normalize so that fraction is in [1/16, 1) with a base-16 exponent.
	exp := 64
	for f >= 1 {
		f /= 16
		exp++
	}
	for f < 1.0/16.0 {
		f *= 16
		exp--
	}
	fraction := uint32(math.Round(f * float64(1<<24)))
	return sign | uint32(exp)<<24 | fraction&0x00FFFFFF
}

// SimpleLine returns a spec for a small, well-formed line: n traces of ns
// IEEE float samples, SourceX/SourceY along a diagonal with unit scalars
// and CDP numbering starting at 100.
func SimpleLine(n, ns int) SegySpec {
	spec := SegySpec{
		Samples:        ns,
		IntervalMicros: 2000,
		Text:           "C 1 TEST LINE",
	}
	for i := 0; i < n; i++ {
		samples := make([]float32, ns)
		for s := range samples {
			samples[s] = float32(i*ns + s)
		}
		spec.Traces = append(spec.Traces, Trace{
			Header: map[int]int{
				21: 100 + i,   // CDP
				71: 0,         // SourceGroupScalar: pass-through
				73: i * 3,     // SourceX
				77: i * 4,     // SourceY
			},
			Samples: samples,
		})
	}
	return spec
}
