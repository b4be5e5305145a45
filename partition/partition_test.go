package partition_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/skymask/partition"
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

func TestPartitionSingleCapIsAlreadyConnected(t *testing.T) {
	p := polygon.New([]spherical.Cap{capDeg(0, 0, 10)}, 1, 0, 1)
	res, err := partition.Partition(&p, tol(), partition.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, partition.Complete, res.Outcome)
	assert.Empty(t, res.Pieces)
}

func TestPartitionAnnulusIsAlreadyConnected(t *testing.T) {
	// An annulus (outer cap minus a same-axis inner cap) has two
	// boundary loops but is a single connected region: the inner loop
	// is a hole, not a separator.
	outer := capDeg(0, 0, 40)
	inner := capDeg(0, 0, 10).Complemented()
	p := polygon.New([]spherical.Cap{outer, inner}, 1, 0, 1)
	res, err := partition.Partition(&p, tol(), partition.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, partition.Complete, res.Outcome)
	assert.Empty(t, res.Pieces)
	require.Len(t, p.Caps, 2)
}

func TestPartitionOverlappingLensIsAlreadyConnected(t *testing.T) {
	p := polygon.New([]spherical.Cap{capDeg(0, 0, 30), capDeg(20, 0, 30)}, 1, 0, 1)
	res, err := partition.Partition(&p, tol(), partition.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, partition.Complete, res.Outcome)
	assert.Empty(t, res.Pieces)
}

func TestPartitionDoesNotSplitConnectedRegionWithAHoleAndACrossing(t *testing.T) {
	// S4-style construction: A\B\C, where B's boundary touches A's
	// (centres 60 deg apart, both radii 30 deg) and C carves a hole well
	// inside the remainder. The result must stay a single polygon.
	a := capDeg(0, 0, 30)
	b := capDeg(60, 0, 30).Complemented()
	c := capDeg(0, 0, 5).Complemented()
	p := polygon.New([]spherical.Cap{a, b, c}, 1, 0, 1)
	_, err := polygon.Prune(&p, tol())
	require.NoError(t, err)

	res, err := partition.Partition(&p, tol(), partition.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, partition.Complete, res.Outcome)
	assert.Empty(t, res.Pieces)
}
