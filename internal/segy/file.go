package segy

import (
	"encoding/binary"
	"fmt"
	"os"
)

// File is an open SEG-Y file. All reads go through ReadAt against the
// underlying descriptor, so the accessors are independent of each other
// and safe to call in any order. Close releases the descriptor.
type File struct {
	path string
	f    *os.File

	traceCount  int
	sampleCount int
	format      int

	// Raw binary-header values kept for the inspection summary.
	binTraces   int
	binSamples  int
	binInterval int

	// Sample interval in microseconds; 0 when the file records nothing
	// usable. Resolution order: first trace header, then binary header.
	intervalMicros float64
}

// Open opens a SEG-Y file and derives its trace geometry from the binary
// header and file size. A missing path surfaces as an error satisfying
// errors.Is(err, fs.ErrNotExist); a structurally unreadable file surfaces
// as a *DecodeError.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("segy: %w", err)
	}

	sf := &File{path: path, f: f}
	if err := sf.readStructure(); err != nil {
		f.Close()
		return nil, err
	}
	return sf, nil
}

// readStructure parses the binary header and validates that the file is a
// whole number of fixed-stride trace records.
func (sf *File) readStructure() error {
	st, err := sf.f.Stat()
	if err != nil {
		return fmt.Errorf("segy: stat %s: %w", sf.path, err)
	}
	size := st.Size()
	if size < headersSize {
		return decodeErrf(sf.path, "file too short for headers: %d bytes, need %d", size, headersSize)
	}

	hdr := make([]byte, BinaryHeaderSize)
	if _, err := sf.f.ReadAt(hdr, TextHeaderSize); err != nil {
		return decodeErrf(sf.path, "read binary header: %v", err)
	}

	// Binary-header offsets are 1-based from the start of the file.
	binInt16 := func(off int) int {
		return int(int16(binary.BigEndian.Uint16(hdr[off-3201:])))
	}
	sf.binTraces = binInt16(binTraces)
	sf.binSamples = binInt16(binSamples)
	sf.binInterval = binInt16(binInterval)
	sf.format = binInt16(binFormat)
	sf.sampleCount = sf.binSamples

	if sf.sampleCount <= 0 {
		return decodeErrf(sf.path, "binary header reports %d samples per trace", sf.sampleCount)
	}
	width := bytesPerSample(sf.format)
	if width == 0 {
		return decodeErrf(sf.path, "unsupported sample format code %d", sf.format)
	}

	stride := int64(TraceHeaderSize + sf.sampleCount*width)
	body := size - headersSize
	if body%stride != 0 {
		return decodeErrf(sf.path, "trailing partial trace: %d bytes after %d whole traces", body%stride, body/stride)
	}
	sf.traceCount = int(body / stride)

	sf.resolveInterval()
	return nil
}

// resolveInterval picks the sample interval: the first trace header's
// interval field when positive, else the binary header's. Either may be
// absent in the wild; a zero result is resolved to a default by the
// caller, not here.
func (sf *File) resolveInterval() {
	if sf.traceCount > 0 {
		var buf [2]byte
		off := headersSize + int64(TraceSampleInterval) - 1
		if _, err := sf.f.ReadAt(buf[:], off); err == nil {
			if v := int16(binary.BigEndian.Uint16(buf[:])); v > 0 {
				sf.intervalMicros = float64(v)
				return
			}
		}
	}
	if sf.binInterval > 0 {
		sf.intervalMicros = float64(sf.binInterval)
	}
}

// Close releases the underlying file descriptor.
func (sf *File) Close() error { return sf.f.Close() }

// Path returns the path the file was opened from.
func (sf *File) Path() string { return sf.path }

// TraceCount returns the number of trace records, derived from file size.
func (sf *File) TraceCount() int { return sf.traceCount }

// SampleCount returns the samples per trace from the binary header.
func (sf *File) SampleCount() int { return sf.sampleCount }

// Format returns the data sample format code from the binary header.
func (sf *File) Format() int { return sf.format }

// SampleIntervalMicros returns the sample interval in microseconds, or 0
// when the file does not record one.
func (sf *File) SampleIntervalMicros() float64 { return sf.intervalMicros }

// stride returns the byte stride of one trace record.
func (sf *File) stride() int64 {
	return int64(TraceHeaderSize + sf.sampleCount*bytesPerSample(sf.format))
}

// ReadAllSamples reads every trace's samples into a dense traces x samples
// grid in file order. The rows share one backing array.
func (sf *File) ReadAllSamples() ([][]float32, error) {
	width := bytesPerSample(sf.format)
	grid := make([][]float32, sf.traceCount)
	backing := make([]float32, sf.traceCount*sf.sampleCount)
	raw := make([]byte, sf.sampleCount*width)

	for i := 0; i < sf.traceCount; i++ {
		off := headersSize + int64(i)*sf.stride() + TraceHeaderSize
		if _, err := sf.f.ReadAt(raw, off); err != nil {
			return nil, decodeErrf(sf.path, "read samples of trace %d: %v", i, err)
		}
		row := backing[i*sf.sampleCount : (i+1)*sf.sampleCount]
		decodeSamples(row, raw, sf.format)
		grid[i] = row
	}
	return grid, nil
}

// ReadAttribute extracts one trace-header field value per trace. The field
// is addressed by its catalog code; a code outside the catalog returns
// ErrFieldNotFound, which callers treat as "this file has no such field".
func (sf *File) ReadAttribute(code int) ([]float64, error) {
	field, ok := LookupField(code)
	if !ok {
		return nil, fmt.Errorf("%w: field %d", ErrFieldNotFound, code)
	}

	values := make([]float64, sf.traceCount)
	raw := make([]byte, field.Size)
	for i := 0; i < sf.traceCount; i++ {
		off := headersSize + int64(i)*sf.stride() + int64(field.Code) - 1
		if _, err := sf.f.ReadAt(raw, off); err != nil {
			return nil, decodeErrf(sf.path, "read header of trace %d: %v", i, err)
		}
		switch field.Size {
		case 2:
			values[i] = float64(int16(binary.BigEndian.Uint16(raw)))
		default:
			values[i] = float64(int32(binary.BigEndian.Uint32(raw)))
		}
	}
	return values, nil
}

// TextHeader reads and decodes the 3200-byte textual header, handling both
// EBCDIC and ASCII encodings and replacing undecodable bytes.
func (sf *File) TextHeader() (string, error) {
	raw := make([]byte, TextHeaderSize)
	if _, err := sf.f.ReadAt(raw, 0); err != nil {
		return "", decodeErrf(sf.path, "read text header: %v", err)
	}
	return decodeTextHeader(raw), nil
}

// BinaryHeaderSummary returns a best-effort key/value view of the binary
// header for inspection. The derived trace count is always present; raw
// header fields are omitted when the file leaves them zeroed.
func (sf *File) BinaryHeaderSummary() map[string]int {
	summary := map[string]int{
		"Traces":  sf.traceCount,
		"Samples": sf.sampleCount,
		"Format":  sf.format,
	}
	if sf.binInterval > 0 {
		summary["Interval"] = sf.binInterval
	}
	if sf.binTraces > 0 {
		summary["EnsembleTraces"] = sf.binTraces
	}
	return summary
}
