package segy

import (
	"encoding/binary"
	"math"
)

// decodeSamples converts one trace's raw sample bytes into float32
// amplitudes according to the file's sample format code. The destination
// slice must hold exactly sampleCount values; the raw slice length is
// sampleCount * bytesPerSample(format), validated by the caller.
func decodeSamples(dst []float32, raw []byte, format int) {
	switch format {
	case FormatIBMFloat:
		for i := range dst {
			dst[i] = ibmToFloat32(binary.BigEndian.Uint32(raw[i*4:]))
		}
	case FormatInt32:
		for i := range dst {
			dst[i] = float32(int32(binary.BigEndian.Uint32(raw[i*4:])))
		}
	case FormatInt16:
		for i := range dst {
			dst[i] = float32(int16(binary.BigEndian.Uint16(raw[i*2:])))
		}
	case FormatFloat32:
		for i := range dst {
			dst[i] = math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:]))
		}
	case FormatFloat64:
		for i := range dst {
			dst[i] = float32(math.Float64frombits(binary.BigEndian.Uint64(raw[i*8:])))
		}
	case FormatInt8:
		for i := range dst {
			dst[i] = float32(int8(raw[i]))
		}
	}
}

// ibmToFloat32 decodes a 4-byte IBM System/360 hexadecimal float.
// Layout: 1 sign bit, 7-bit excess-64 base-16 exponent, 24-bit fraction.
// value = (-1)^sign * fraction/2^24 * 16^(exponent-64)
func ibmToFloat32(bits uint32) float32 {
	if bits == 0 {
		return 0
	}
	sign := 1.0
	if bits&0x80000000 != 0 {
		sign = -1.0
	}
	exponent := int(bits>>24&0x7F) - 64
	fraction := float64(bits&0x00FFFFFF) / float64(1<<24)
	return float32(sign * fraction * math.Pow(16, float64(exponent)))
}
