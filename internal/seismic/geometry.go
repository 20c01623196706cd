package seismic

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// cumulativeDistance computes the along-line position of each trace: the
// running sum of Euclidean segment lengths between consecutive (x, y)
// pairs. The result starts at 0 and is non-decreasing; coincident
// neighbours contribute a zero-length segment. An empty input yields an
// empty result.
func cumulativeDistance(x, y []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	dist := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		dist[i] = math.Hypot(x[i]-x[i-1], y[i]-y[i-1])
	}
	floats.CumSum(dist, dist)
	return dist
}
