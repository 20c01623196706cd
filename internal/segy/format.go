package segy

/*
SEG-Y File Layout

A SEG-Y file is a fixed 3200-byte textual header, a fixed 400-byte binary
header, then a run of fixed-stride trace records. Each trace record is a
240-byte trace header followed by one amplitude sample per recorded time
step. All multi-byte integers are big-endian.

FILE STRUCTURE:
├── Textual header (3200 bytes) - 40 "card images" of 80 characters,
│   usually EBCDIC, sometimes plain ASCII
├── Binary header (400 bytes)   - survey-wide integers at fixed offsets
└── Trace records (repeated)    - 240-byte header + ns samples each

The trace stride is constant within a file: samples-per-trace and the
sample format code come from the binary header, so the trace count can be
derived from the file size. The standard does not record a trace count
anywhere reliable, and real-world files frequently leave the binary-header
trace fields stale, so the derived count is authoritative here.

Trace-header fields are addressed by their 1-based byte offset within the
240-byte header (the convention used by every SEG-Y tool chain); each field
is a signed big-endian integer of 2 or 4 bytes. The catalog in fields.go
maps offsets to names and widths.
*/

const (
	TextHeaderSize   = 3200                              // Textual header: 40 lines x 80 chars
	BinaryHeaderSize = 400                               // Binary header size in bytes
	TraceHeaderSize  = 240                               // Per-trace header size in bytes
	headersSize      = TextHeaderSize + BinaryHeaderSize // Offset of the first trace record

	TextHeaderLines   = 40 // Card images in the textual header
	TextHeaderColumns = 80 // Characters per card image
)

// Binary-header field offsets, 1-based from the start of the file
// (i.e. 3201 is the first byte of the binary header). Only the fields the
// loader needs are listed; the rest of the 400 bytes is ignored.
const (
	binJobID    = 3201 // int32: job identification number
	binLine     = 3205 // int32: line number
	binReel     = 3209 // int32: reel number
	binTraces   = 3213 // int16: data traces per ensemble (often stale)
	binAux      = 3215 // int16: auxiliary traces per ensemble
	binInterval = 3217 // int16: sample interval in microseconds
	binSamples  = 3221 // int16: samples per data trace
	binFormat   = 3225 // int16: data sample format code
)

// Data sample format codes from the SEG-Y standard. Revision 0 files are
// almost always format 1 (IBM float); revision 1+ files commonly use 5.
const (
	FormatIBMFloat = 1 // 4-byte IBM hexadecimal floating point
	FormatInt32    = 2 // 4-byte two's complement integer
	FormatInt16    = 3 // 2-byte two's complement integer
	FormatFloat32  = 5 // 4-byte IEEE floating point
	FormatFloat64  = 6 // 8-byte IEEE floating point
	FormatInt8     = 8 // 1-byte two's complement integer
)

// bytesPerSample returns the sample width for a format code, or 0 when the
// format is not one this reader decodes.
func bytesPerSample(format int) int {
	switch format {
	case FormatIBMFloat, FormatInt32, FormatFloat32:
		return 4
	case FormatInt16:
		return 2
	case FormatFloat64:
		return 8
	case FormatInt8:
		return 1
	default:
		return 0
	}
}

// formatName returns a human-readable label for a sample format code.
func formatName(format int) string {
	switch format {
	case FormatIBMFloat:
		return "ibm float32"
	case FormatInt32:
		return "int32"
	case FormatInt16:
		return "int16"
	case FormatFloat32:
		return "ieee float32"
	case FormatFloat64:
		return "ieee float64"
	case FormatInt8:
		return "int8"
	default:
		return "unknown"
	}
}
