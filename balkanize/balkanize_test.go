package balkanize_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/skymask/balkanize"
	"github.com/katalvlaran/skymask/polygon"
	"github.com/katalvlaran/skymask/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func axis(lonDeg, latDeg float64) spherical.Vec3 {
	lon := lonDeg * math.Pi / 180
	lat := latDeg * math.Pi / 180
	return spherical.Vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

func capDeg(lonDeg, latDeg, radiusDeg float64) spherical.Cap {
	theta := radiusDeg * math.Pi / 180
	cm := 1 - math.Cos(theta)
	return spherical.FromSignedCM(axis(lonDeg, latDeg), cm)
}

// coveredBy reports whether x lies inside at least one polygon of polys.
func coveredBy(polys []polygon.Polygon, x spherical.Vec3) bool {
	for _, p := range polys {
		if polygon.PointIn(p, x) {
			return true
		}
	}
	return false
}

// samplePoints returns a fixed grid of test points over the sphere,
// used to compare set coverage before and after balkanizing without
// needing a dedicated area integrator.
func samplePoints() []spherical.Vec3 {
	var pts []spherical.Vec3
	for lon := 0; lon < 360; lon += 10 {
		for lat := -80; lat <= 80; lat += 10 {
			pts = append(pts, axis(float64(lon), float64(lat)))
		}
	}
	return pts
}

func TestBalkanizeDisjointInputsPassThroughUnchanged(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 10)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(90, 0, 10)}, 2, 0, 1)

	res, err := balkanize.Balkanize([]polygon.Polygon{a, b}, balkanize.DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, res.Polygons, 2)
	assert.Empty(t, res.Warnings)
}

func TestBalkanizeOverlappingInputsProduceDisjointOutput(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 20)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(15, 0, 20)}, 2, 0, 1)

	res, err := balkanize.Balkanize([]polygon.Polygon{a, b}, balkanize.DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, res.Polygons)

	for i := 0; i < len(res.Polygons); i++ {
		for j := i + 1; j < len(res.Polygons); j++ {
			overlap := res.Polygons[i].WithExtraCaps(res.Polygons[j].Caps...)
			pr, err := polygon.Prune(&overlap, spherical.NewCM(1e-9))
			require.NoError(t, err)
			assert.Equal(t, polygon.PruneEmpty, pr.Outcome, "pieces %d and %d must not overlap", i, j)
		}
	}
}

func TestBalkanizeLaterInputWinsOnOverlap(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 20)}, 1, 0, 7)
	b := polygon.New([]spherical.Cap{capDeg(0, 0, 20)}, 2, 0, 9)

	res, err := balkanize.Balkanize([]polygon.Polygon{a, b}, balkanize.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Polygons, 1)
	assert.Equal(t, 9.0, res.Polygons[0].Weight)
}

func TestBalkanizeTripleOverlapProducesDisjointOutputWithDominantWeight(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 20)}, 0, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(10, 0, 20)}, 1, 0, 2)
	c := polygon.New([]spherical.Cap{capDeg(5, 10, 20)}, 2, 0, 3)

	res, err := balkanize.Balkanize([]polygon.Polygon{a, b, c}, balkanize.DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, res.Polygons)

	for i := 0; i < len(res.Polygons); i++ {
		for j := i + 1; j < len(res.Polygons); j++ {
			overlap := res.Polygons[i].WithExtraCaps(res.Polygons[j].Caps...)
			pr, err := polygon.Prune(&overlap, spherical.NewCM(1e-9))
			require.NoError(t, err)
			assert.Equal(t, polygon.PruneEmpty, pr.Outcome, "pieces %d and %d must not overlap", i, j)
		}
	}

	// The point common to all three input caps must end up covered by
	// exactly one output piece, and that piece must carry c's weight (3):
	// the latest-indexed polygon dominates every pairwise and triple
	// overlap alike.
	triple := axis(5, 3)
	require.True(t, polygon.PointIn(a, triple))
	require.True(t, polygon.PointIn(b, triple))
	require.True(t, polygon.PointIn(c, triple))

	var owners []polygon.Polygon
	for _, p := range res.Polygons {
		if polygon.PointIn(p, triple) {
			owners = append(owners, p)
		}
	}
	require.Len(t, owners, 1, "triple-overlap point must be covered by exactly one output piece")
	assert.Equal(t, 3.0, owners[0].Weight)
}

func TestBalkanizeRenumberSequentialAssignsContiguousIds(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 5)}, 42, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(90, 0, 5)}, 7, 0, 1)

	res, err := balkanize.Balkanize([]polygon.Polygon{a, b}, balkanize.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Polygons, 2)
	for i, p := range res.Polygons {
		assert.Equal(t, int64(i), p.ID)
	}
}

func TestBalkanizeRenumberPreserveKeepsOriginalIds(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 5)}, 42, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(90, 0, 5)}, 7, 0, 1)

	res, err := balkanize.Balkanize([]polygon.Polygon{a, b},
		balkanize.DefaultConfig(balkanize.WithRenumberMode(balkanize.RenumberPreserve)))
	require.NoError(t, err)
	ids := map[int64]bool{}
	for _, p := range res.Polygons {
		ids[p.ID] = true
	}
	assert.True(t, ids[42])
	assert.True(t, ids[7])
}

func TestBalkanizeDropsNullCapInputAsWarning(t *testing.T) {
	bad := polygon.New([]spherical.Cap{spherical.FromSignedCM(axis(0, 0), 0)}, 1, 0, 1)
	good := polygon.New([]spherical.Cap{capDeg(90, 0, 5)}, 2, 0, 1)

	res, err := balkanize.Balkanize([]polygon.Polygon{bad, good}, balkanize.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Polygons, 1)
	assert.Equal(t, int64(0), res.Polygons[0].ID)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, int64(1), res.Warnings[0].PolygonID)
}

func TestBalkanizePreservesCoveredRegion(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 20)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(15, 0, 20)}, 2, 0, 1)

	res, err := balkanize.Balkanize([]polygon.Polygon{a, b}, balkanize.DefaultConfig())
	require.NoError(t, err)

	for _, pt := range samplePoints() {
		before := coveredBy([]polygon.Polygon{a, b}, pt)
		after := coveredBy(res.Polygons, pt)
		assert.Equal(t, before, after, "coverage mismatch at %+v", pt)
	}
}
