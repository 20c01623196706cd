package segy

import "strings"

// The 3200-byte textual header predates ASCII dominance: revision 0 files
// carry it in EBCDIC (code page 037), later files often use plain ASCII.
// Both are handled here; bytes with no printable mapping are replaced with
// a space rather than failing the read.

// ebcdicToASCII maps EBCDIC (cp037) bytes to printable ASCII. Zero entries
// mean "no printable mapping" and are replaced during decode.
var ebcdicToASCII [256]byte

func init() {
	set := func(start byte, chars string) {
		for i := 0; i < len(chars); i++ {
			ebcdicToASCII[int(start)+i] = chars[i]
		}
	}
	set(0x40, " ")
	set(0x4B, ".<(+|")
	set(0x50, "&")
	set(0x5A, "!$*);^")
	set(0x60, "-/")
	set(0x6B, ",%_>?")
	set(0x79, "`:#@'=\"")
	set(0x81, "abcdefghi")
	set(0x91, "jklmnopqr")
	set(0xA1, "~stuvwxyz")
	set(0xC0, "{ABCDEFGHI")
	set(0xD0, "}JKLMNOPQR")
	set(0xE0, "\\")
	set(0xE2, "STUVWXYZ")
	set(0xF0, "0123456789")
}

// decodeTextHeader converts a raw 3200-byte textual header block to ASCII,
// auto-detecting EBCDIC versus ASCII encoding and folding the result into
// the standard 40 lines of 80 characters.
func decodeTextHeader(raw []byte) string {
	ascii := make([]byte, len(raw))
	if looksASCII(raw) {
		for i, b := range raw {
			if b >= 0x20 && b <= 0x7E {
				ascii[i] = b
			} else {
				ascii[i] = ' '
			}
		}
	} else {
		for i, b := range raw {
			if c := ebcdicToASCII[b]; c != 0 {
				ascii[i] = c
			} else {
				ascii[i] = ' '
			}
		}
	}

	var sb strings.Builder
	sb.Grow(len(ascii) + TextHeaderLines)
	for off := 0; off < len(ascii); off += TextHeaderColumns {
		end := off + TextHeaderColumns
		if end > len(ascii) {
			end = len(ascii)
		}
		sb.Write(ascii[off:end])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// looksASCII reports whether the block is predominantly printable ASCII.
// EBCDIC text sits almost entirely above 0x7F, so a printable ratio over
// the non-NUL bytes separates the two reliably. NUL bytes are common
// padding under either encoding and carry no signal.
func looksASCII(raw []byte) bool {
	printable, total := 0, 0
	for _, b := range raw {
		if b == 0 {
			continue
		}
		total++
		if b >= 0x20 && b <= 0x7E {
			printable++
		}
	}
	if total == 0 {
		return true
	}
	return printable*10 >= total*7
}
