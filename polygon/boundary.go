package polygon

import (
	"math"
	"sort"

	"github.com/katalvlaran/skymask/spherical"
)

// Vertex is a point where two cap boundaries cross, tagged with the two
// caps that meet there (§3, "Vertex/edge enumeration").
type Vertex struct {
	Point    spherical.Vec3
	CapA     int // index into the polygon's Caps
	CapB     int
}

// Arc is one circular-arc segment of a polygon's boundary: a portion of
// one cap's boundary circle between two vertices.
type Arc struct {
	Cap   int // index into the polygon's Caps whose boundary this arc traces
	Start Vertex
	End   Vertex
	// FullCircle is true when this arc is an entire boundary circle with
	// no intersections (a cap nested strictly inside all the others).
	FullCircle bool
}

// Loop is one closed boundary component of a polygon: an ordered,
// head-to-tail sequence of Arcs.
type Loop struct {
	Arcs []Arc
}

// boundaryTolFloat is an angular tolerance (as a cm difference) for
// deciding whether a candidate intersection point lies on another cap's
// boundary. Vertices and Loops do not read it: they take their tolerance
// as the tol argument.
const boundaryTolFloat = 1e-10

// circleIntersections returns the 0, 1, or 2 unit vectors where the
// boundary circles of caps a and b (ignoring complement sign, since a
// cap and its complement share the same boundary locus) cross.
//
// Derivation: write a candidate point p = x*a.Axis + y*b.Axis + t*(a.Axis
// x b.Axis). Matching p.Axis_a=cos(theta_a) and p.Axis_b=cos(theta_b)
// gives a linear system for x,y; matching |p|=1 gives a quadratic for t.
func circleIntersections(a, b spherical.Cap) []spherical.Vec3 {
	axisA, axisB := a.Axis, b.Axis
	cosA := 1 - a.Extent.Float64()
	cosB := 1 - b.Extent.Float64()
	cd := axisA.Dot(axisB)

	denom := 1 - cd*cd
	if math.Abs(denom) < 1e-15 {
		// Axes coincide or are antipodal: circles are concentric (no
		// transverse intersection) or coincide exactly (infinitely
		// many); neither contributes isolated vertices.
		return nil
	}

	x := (cosA - cosB*cd) / denom
	y := (cosB - cosA*cd) / denom

	c := axisA.Cross(axisB) // |c|^2 == denom
	t2 := (1 - x*x - y*y - 2*x*y*cd) / denom
	if t2 < -1e-12 {
		return nil
	}
	if t2 < 0 {
		t2 = 0
	}
	base := axisA.Scale(x).Add(axisB.Scale(y))
	if t2 < 1e-24 {
		return []spherical.Vec3{base}
	}
	t := math.Sqrt(t2)
	p1 := base.Add(c.Scale(t))
	p2 := base.Sub(c.Scale(t))
	return []spherical.Vec3{p1, p2}
}

// Vertices enumerates every true vertex of p: a candidate crossing of two
// cap boundaries that lies within (or on the boundary of, within tol) all
// of p's other caps. Returns the vertices grouped by which pair of caps
// produced them; the same geometric point can appear once per
// contributing pair in degenerate (three-or-more-caps-concurrent)
// configurations.
func Vertices(p Polygon, tol spherical.CM) []Vertex {
	var verts []Vertex
	n := len(p.Caps)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, pt := range circleIntersections(p.Caps[i], p.Caps[j]) {
				if pointSatisfiesOthers(p, pt, i, j, tol) {
					verts = append(verts, Vertex{Point: pt, CapA: i, CapB: j})
				}
			}
		}
	}
	return verts
}

func pointSatisfiesOthers(p Polygon, pt spherical.Vec3, i, j int, tol spherical.CM) bool {
	for k, c := range p.Caps {
		if k == i || k == j {
			continue
		}
		d := spherical.CMBetween(c.Axis, pt)
		if !c.Complement {
			if d.GreaterThan(c.Extent.Add(tol)) {
				return false
			}
		} else {
			if d.LessThan(c.Extent.Sub(tol)) {
				return false
			}
		}
	}
	return true
}

// Loops computes the polygon's boundary as a set of closed loops
// (gverts/gvlims, §3). Caps that contribute no vertex either trace a
// full, standalone circular loop (when every point of that circle lies
// in all other caps) or contribute nothing to the boundary at all (when
// they are redundant given the other caps).
func Loops(p Polygon, tol spherical.CM) []Loop {
	n := len(p.Caps)
	if n == 0 {
		return nil
	}
	verts := Vertices(p, tol)

	byCap := make([][]Vertex, n)
	for _, v := range verts {
		byCap[v.CapA] = append(byCap[v.CapA], v)
		byCap[v.CapB] = append(byCap[v.CapB], v)
	}

	var loops []Loop
	// stitchArc records each kept arc with its quantized endpoint keys,
	// used to stitch per-cap arcs into closed loops below.
	type stitchArc struct {
		arc        Arc
		startKey   vkey
		endKey     vkey
	}
	var stitch []stitchArc

	for capIdx := 0; capIdx < n; capIdx++ {
		cvs := byCap[capIdx]
		if len(cvs) == 0 {
			if capContributesFullCircle(p, capIdx) {
				loops = append(loops, Loop{Arcs: []Arc{{Cap: capIdx, FullCircle: true}}})
			}
			continue
		}
		ordered, angles, ref, perp := sortAroundAxis(p.Caps[capIdx].Axis, cvs)
		m := len(ordered)
		for k := 0; k < m; k++ {
			start := ordered[k]
			end := ordered[(k+1)%m]
			a0 := angles[k]
			a1 := angles[(k+1)%m]
			if a1 <= a0 {
				a1 += 2 * math.Pi
			}
			midAngle := (a0 + a1) / 2
			mid := pointAtAngle(p.Caps[capIdx], ref, perp, midAngle)
			if pointSatisfiesAll(p, mid, capIdx) {
				if p.Caps[capIdx].Complement {
					// The region lies outside this circle: walk it the
					// other way so the arc joins its neighbours head-to-tail.
					start, end = end, start
				}
				a := Arc{Cap: capIdx, Start: start, End: end}
				stitch = append(stitch, stitchArc{arc: a, startKey: keyOf(start.Point), endKey: keyOf(end.Point)})
			}
		}
	}

	// Stitch kept arcs head-to-tail into closed loops by following
	// shared endpoints.
	used := make([]bool, len(stitch))
	for i := range stitch {
		if used[i] {
			continue
		}
		loop := Loop{}
		cur := i
		for {
			used[cur] = true
			loop.Arcs = append(loop.Arcs, stitch[cur].arc)
			nextKey := stitch[cur].endKey
			next := -1
			for k := range stitch {
				if !used[k] && stitch[k].startKey == nextKey {
					next = k
					break
				}
			}
			if next == -1 {
				break
			}
			cur = next
			if cur == i {
				break
			}
		}
		loops = append(loops, loop)
	}

	return loops
}

// capContributesFullCircle reports whether cap's entire boundary circle
// lies within every other cap of p, making it a standalone loop.
func capContributesFullCircle(p Polygon, capIdx int) bool {
	c := p.Caps[capIdx]
	ref := referenceTangentPoint(c)
	return pointSatisfiesAll(p, ref, capIdx)
}

func pointSatisfiesAll(p Polygon, pt spherical.Vec3, skip int) bool {
	for k, c := range p.Caps {
		if k == skip {
			continue
		}
		if !c.Contains(pt) {
			return false
		}
	}
	return true
}

// referenceTangentPoint returns an arbitrary point on cap c's boundary
// circle, used when the circle carries no vertices.
func referenceTangentPoint(c spherical.Cap) spherical.Vec3 {
	cosT := 1 - c.Extent.Float64()
	sinT := math.Sqrt(math.Max(0, 1-cosT*cosT))
	ref, _ := orthonormalBasis(c.Axis)
	return c.Axis.Scale(cosT).Add(ref.Scale(sinT))
}

// orthonormalBasis returns two unit vectors orthogonal to axis and to
// each other, spanning axis's tangent plane.
func orthonormalBasis(axis spherical.Vec3) (spherical.Vec3, spherical.Vec3) {
	helper := spherical.Vec3{X: 0, Y: 0, Z: 1}
	if math.Abs(axis.Z) > 0.9 {
		helper = spherical.Vec3{X: 1, Y: 0, Z: 0}
	}
	u, _ := axis.Cross(helper).Unit()
	v := axis.Cross(u)
	return u, v
}

// sortAroundAxis orders vertices by azimuthal angle around axis, using an
// arbitrary fixed reference direction (ref, perp) in axis's tangent
// plane. It returns the ordered vertices alongside their angles (radians,
// increasing, in [-pi, pi]) and the basis used, so callers can compute a
// representative point at any angle strictly between two consecutive
// vertices without the ambiguity of which side of the chord it's on.
func sortAroundAxis(axis spherical.Vec3, vs []Vertex) ([]Vertex, []float64, spherical.Vec3, spherical.Vec3) {
	ref, perp := orthonormalBasis(axis)
	type withAngle struct {
		v     Vertex
		angle float64
	}
	tagged := make([]withAngle, len(vs))
	for i, v := range vs {
		d := v.Point.Sub(axis.Scale(axis.Dot(v.Point)))
		x := d.Dot(ref)
		y := d.Dot(perp)
		tagged[i] = withAngle{v: v, angle: math.Atan2(y, x)}
	}
	sort.Slice(tagged, func(i, j int) bool { return tagged[i].angle < tagged[j].angle })
	outV := make([]Vertex, len(tagged))
	outA := make([]float64, len(tagged))
	for i, t := range tagged {
		outV[i] = t.v
		outA[i] = t.angle
	}
	return outV, outA, ref, perp
}

// pointAtAngle returns the point on cap c's boundary circle at azimuthal
// angle a measured from ref towards perp in c's tangent plane.
func pointAtAngle(c spherical.Cap, ref, perp spherical.Vec3, a float64) spherical.Vec3 {
	cosT := 1 - c.Extent.Float64()
	sinT := math.Sqrt(math.Max(0, 1-cosT*cosT))
	dir := ref.Scale(math.Cos(a)).Add(perp.Scale(math.Sin(a)))
	return c.Axis.Scale(cosT).Add(dir.Scale(sinT))
}

type vkey [3]int64

func keyOf(v spherical.Vec3) vkey {
	const scale = 1e9
	return vkey{
		int64(math.Round(v.X * scale)),
		int64(math.Round(v.Y * scale)),
		int64(math.Round(v.Z * scale)),
	}
}
