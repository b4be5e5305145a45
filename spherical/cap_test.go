package spherical_test

import (
	"math"
	"testing"

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

func TestCapContains(t *testing.T) {
	c := capDeg(0, 0, 10)
	assert.True(t, c.Contains(axis(0, 0)), "center must be contained")
	assert.True(t, c.Contains(axis(5, 0)), "point well inside radius must be contained")
	assert.False(t, c.Contains(axis(20, 0)), "point well outside radius must not be contained")
}

func TestCapComplement(t *testing.T) {
	c := capDeg(0, 0, 10)
	comp := c.Complemented()
	require.True(t, comp.Complement)
	assert.False(t, comp.Contains(axis(0, 0)))
	assert.True(t, comp.Contains(axis(90, 0)))
}

func TestCapIsNullAndVacuous(t *testing.T) {
	null := spherical.FromSignedCM(axis(0, 0), 0)
	assert.True(t, null.IsNull())
	assert.True(t, null.IsEmptySet())

	whole := spherical.FromSignedCM(axis(0, 0), 2)
	assert.True(t, whole.IsVacuous())

	wholeViaComplementOfNull := null.Complemented()
	assert.True(t, wholeViaComplementOfNull.IsVacuous())
}

func TestCapSignedCMRoundTrip(t *testing.T) {
	c := capDeg(10, 20, 15)
	got := spherical.FromSignedCM(c.Axis, c.SignedCM().Float64())
	assert.InDelta(t, c.Extent.Float64(), got.Extent.Float64(), 1e-12)
	assert.Equal(t, c.Complement, got.Complement)

	comp := c.Complemented()
	got2 := spherical.FromSignedCM(comp.Axis, comp.SignedCM().Float64())
	assert.InDelta(t, comp.Extent.Float64(), got2.Extent.Float64(), 1e-12)
	assert.Equal(t, comp.Complement, got2.Complement)
}

func TestCapExclusiveOf(t *testing.T) {
	a := capDeg(0, 0, 10)
	b := capDeg(90, 0, 10)
	assert.True(t, a.ExclusiveOf(b), "caps separated by 90 deg with 10 deg radii do not overlap")

	c := capDeg(5, 0, 10)
	assert.False(t, a.ExclusiveOf(c), "overlapping caps must not be reported exclusive")
}

func TestCapAreaMatchesSolidAngleFormula(t *testing.T) {
	c := capDeg(0, 0, 30)
	theta := 30 * math.Pi / 180
	want := 2 * math.Pi * (1 - math.Cos(theta))
	assert.InDelta(t, want, c.Area(), 1e-9)

	comp := c.Complemented()
	assert.InDelta(t, 4*math.Pi-want, comp.Area(), 1e-9)
}

func TestCapEffectiveCM(t *testing.T) {
	c := capDeg(0, 0, 10)
	assert.InDelta(t, c.Extent.Float64(), c.EffectiveCM().Float64(), 1e-12)

	comp := c.Complemented()
	assert.InDelta(t, 2-c.Extent.Float64(), comp.EffectiveCM().Float64(), 1e-12)
}
