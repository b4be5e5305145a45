package fragment_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/skymask/fragment"
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

func tol() spherical.CM { return spherical.NewCM(1e-9) }

func TestFragmentDisjointCapsIsNoOp(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 10)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(90, 0, 10)}, 2, 0, 1)
	res, err := fragment.Fragment(a, b, false, tol())
	require.NoError(t, err)
	assert.True(t, res.NoOp)
	assert.Nil(t, res.Intersection)
	assert.Empty(t, res.Remainder)
}

func TestFragmentAEntirelyInsideBIsNoOp(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 10)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(0, 0, 40)}, 2, 0, 1)
	res, err := fragment.Fragment(a, b, false, tol())
	require.NoError(t, err)
	assert.True(t, res.NoOp)
}

func TestFragmentAEntirelyInsideBWithDiscardProducesNothing(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 10)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(0, 0, 40)}, 2, 0, 1)
	res, err := fragment.Fragment(a, b, true, tol())
	require.NoError(t, err)
	assert.False(t, res.NoOp)
	assert.Nil(t, res.Intersection)
	assert.Empty(t, res.Remainder)
}

func TestFragmentEqualCapsWithDiscardProducesNothing(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 20)}, 1, 0, 7)
	b := polygon.New([]spherical.Cap{capDeg(0, 0, 20)}, 2, 0, 9)
	res, err := fragment.Fragment(a, b, true, tol())
	require.NoError(t, err)
	assert.False(t, res.NoOp)
	assert.Nil(t, res.Intersection)
	assert.Empty(t, res.Remainder)
}

func TestFragmentOverlappingCapsProducesRemainderAndIntersection(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 30)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(20, 0, 30)}, 2, 0, 1)
	res, err := fragment.Fragment(a, b, false, tol())
	require.NoError(t, err)
	assert.False(t, res.NoOp)
	require.Len(t, res.Remainder, 1)
	require.NotNil(t, res.Intersection)

	// The remainder must not contain the overlap region.
	inside := axis(10, 0)
	assert.False(t, polygon.PointIn(res.Remainder[0], inside))
	assert.True(t, polygon.PointIn(*res.Intersection, inside))

	// The remainder must still contain the part of a untouched by b.
	untouched := axis(-15, 0)
	assert.True(t, polygon.PointIn(res.Remainder[0], untouched))
}

func TestFragmentDiscardIntersectionOmitsIt(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 30)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(20, 0, 30)}, 2, 0, 1)
	res, err := fragment.Fragment(a, b, true, tol())
	require.NoError(t, err)
	assert.Nil(t, res.Intersection)
	require.Len(t, res.Remainder, 1)
}

func TestFragmentBWithMultipleCapsProducesOnePiecePerSurvivingCap(t *testing.T) {
	a := polygon.New([]spherical.Cap{capDeg(0, 0, 40)}, 1, 0, 1)
	b := polygon.New([]spherical.Cap{capDeg(0, 0, 20), capDeg(20, 0, 20)}, 2, 0, 1)
	res, err := fragment.Fragment(a, b, false, tol())
	require.NoError(t, err)
	assert.False(t, res.NoOp)
	assert.LessOrEqual(t, len(res.Remainder), 2)
	assert.NotEmpty(t, res.Remainder)
}
