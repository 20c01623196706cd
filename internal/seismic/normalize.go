package seismic

// adjustment captures the manual corrections an operator can apply on top
// of the file's own scalar convention: an override scale factor and an
// additive offset. Both default to "no effect".
type adjustment struct {
	override *float64
	offset   float64
}

// scaleCoordinates applies the SEG-Y signed-scalar convention to raw
// header coordinate values, then the manual adjustments, in that order.
//
// The scalar is a per-trace signed integer with three distinct cases:
// zero passes the raw value through untouched, a positive scalar divides,
// a negative scalar multiplies by its magnitude. The zero case is an exact
// pass-through, so the branch is explicit rather than folded into a
// sign-times-magnitude expression. Scalars legitimately vary trace to
// trace within one file.
//
// A nil scalars slice means no scalar field is configured: every value
// passes through unscaled. The override factor, when set, multiplies the
// scalar-normalized value; the offset is added last.
func scaleCoordinates(raw, scalars []float64, adj adjustment) []float64 {
	scaled := make([]float64, len(raw))
	for i, v := range raw {
		var s float64
		if scalars != nil {
			s = scalars[i]
		}
		switch {
		case s == 0:
			scaled[i] = v
		case s > 0:
			scaled[i] = v / s
		default:
			scaled[i] = v * -s
		}
		if adj.override != nil {
			scaled[i] *= *adj.override
		}
		scaled[i] += adj.offset
	}
	return scaled
}
