package partition

import (
	"math"

	"github.com/katalvlaran/skymask/polygon"
	"github.com/katalvlaran/skymask/spherical"
)

// angularDistance returns the angle in [0, pi] between two unit vectors.
func angularDistance(a, b spherical.Vec3) float64 {
	cosv := a.Dot(b)
	if cosv > 1 {
		cosv = 1
	} else if cosv < -1 {
		cosv = -1
	}
	return math.Acos(cosv)
}

// capAngularRange returns the minimum and maximum angular distance from
// axis to any point on cap c's boundary circle (gcmlim.c's extremum
// computation): the circle's points range over [sep-theta, sep+theta]
// where sep is the distance between axis and c's own axis and theta is
// c's angular radius, clamped to the valid [0, pi] range.
func capAngularRange(axis spherical.Vec3, c spherical.Cap) (min, max float64) {
	sep := angularDistance(axis, c.Axis)
	cosTheta := 1 - c.Extent.Float64()
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	theta := math.Acos(cosTheta)
	max = sep + theta
	if max > math.Pi {
		max = math.Pi
	}
	min = math.Abs(sep - theta)
	return min, max
}

// loopAngularRange returns the minimum and maximum angular distance from
// axis to loop l: the whole circle for a full-circle arc (its cap
// resolved from p), and only the start vertex for any other arc. Points
// in the interior of a crossing arc are not measured.
func loopAngularRange(p polygon.Polygon, axis spherical.Vec3, l polygon.Loop) (min, max float64) {
	min, max = math.Pi, 0
	for _, arc := range l.Arcs {
		if arc.FullCircle {
			amin, amax := capAngularRange(axis, p.Caps[arc.Cap])
			if amin < min {
				min = amin
			}
			if amax > max {
				max = amax
			}
			continue
		}
		d := angularDistance(axis, arc.Start.Point)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// cmFromTheta converts an angular radius to the cm representation
// (1 - cos theta) used by Cap.Extent.
func cmFromTheta(theta float64) spherical.CM {
	return spherical.NewCM(1 - math.Cos(theta))
}

// findLasso searches for a radius R, centred on axis, such that the cap
// of radius R contains loop L (loops[lIdx]) and excludes at least one
// loop named in others. It starts wide — midway between L's minimal
// enclosing radius and the sphere's full angular extent — and halves the
// excess over L's minimal radius up to maxSteps times (ADJUST_LASSO)
// whenever the current guess also contains every loop in others.
func findLasso(p polygon.Polygon, axis spherical.Vec3, loops []polygon.Loop, lIdx int, others []int, maxSteps int) (radius float64, found bool) {
	_, lMax := loopAngularRange(p, axis, loops[lIdx])
	r := lMax + (math.Pi-lMax)/2

	for step := 0; step <= maxSteps; step++ {
		for _, idx := range others {
			oMin, _ := loopAngularRange(p, axis, loops[idx])
			if oMin > r {
				return r, true
			}
		}
		excess := r - lMax
		if excess < 1e-9 {
			break
		}
		r = lMax + excess/2
	}
	return 0, false
}
