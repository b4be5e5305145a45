package polygon

import "github.com/katalvlaran/skymask/spherical"

// PointIn reports whether x lies in p's region: gptin's defining
// identity is that a point lies in a polygon iff it lies in every one of
// the polygon's caps. A polygon with zero caps is the whole sphere, so
// every point is contained.
func PointIn(p Polygon, x spherical.Vec3) bool {
	for _, c := range p.Caps {
		if !c.Contains(x) {
			return false
		}
	}
	return true
}
