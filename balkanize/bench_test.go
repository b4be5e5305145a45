package balkanize_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/skymask/balkanize"
	"github.com/katalvlaran/skymask/polygon"
	"github.com/katalvlaran/skymask/spherical"
)

// BenchmarkBalkanizeOverlappingRing measures Balkanize's cost fragmenting
// N caps arranged around a ring, each overlapping its nearest
// neighbours, all sharing pixel
// 0 so every pair lands in the same bucket (the worst case for stage
// 1's bucket-local O(k^2) term).
func BenchmarkBalkanizeOverlappingRing(b *testing.B) {
	const n = 40
	polys := make([]polygon.Polygon, n)
	for i := 0; i < n; i++ {
		lon := float64(i) * (360.0 / n) * math.Pi / 180
		axis := spherical.Vec3{X: math.Cos(lon), Y: math.Sin(lon), Z: 0}
		theta := (360.0 / n) * 1.5 * math.Pi / 180
		polys[i] = polygon.New([]spherical.Cap{spherical.FromSignedCM(axis, 1-math.Cos(theta))}, int64(i), 0, 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := make([]polygon.Polygon, len(polys))
		copy(input, polys)
		if _, err := balkanize.Balkanize(input, balkanize.DefaultConfig()); err != nil {
			b.Fatalf("balkanize failed: %v", err)
		}
	}
}
