package polygon

import "github.com/katalvlaran/skymask/spherical"

// Polygon is the set intersection of its Caps on the unit sphere. A
// Polygon with zero Caps denotes the whole sphere.
//
// Invariants (enforced at ingestion and re-checked after every split,
// §3): no live Polygon's Caps contains a null cap (Cap.IsNull); every
// cap's axis is a unit vector; Pixel names a pixel that fully contains
// the Polygon's region.
//
// Polygon carries no mutex: §5 of the originating specification fixes a
// single-threaded, synchronous scheduling model for this whole engine,
// so a concurrency-safe Polygon would defend against a class of access
// the driver never performs. Parallelism, where it exists at all, is
// across independent pixel buckets holding independent Polygon values
// (see the pixel package and balkanize's stage 1), not across mutation
// of one Polygon from multiple goroutines.
type Polygon struct {
	// Caps is the ordered list of caps whose intersection is this
	// polygon's region.
	Caps []spherical.Cap

	// ID is the polygon's identifier, either inherited from an input
	// file or reassigned by the balkanize driver's renumbering mode.
	ID int64

	// Pixel names a pixel (under whatever scheme produced it) that
	// fully contains this polygon's region.
	Pixel int

	// Weight is the polygon's weight; on overlap, the balkanize driver
	// arranges for the later input polygon's weight to win (§4.2).
	Weight float64
}

// New constructs a Polygon from caps and attributes. It does not prune;
// call Prune before relying on the polygon's invariants.
func New(caps []spherical.Cap, id int64, pixel int, weight float64) Polygon {
	return Polygon{Caps: append([]spherical.Cap(nil), caps...), ID: id, Pixel: pixel, Weight: weight}
}

// NumCaps returns the number of caps. Zero means "whole sphere".
func (p Polygon) NumCaps() int {
	return len(p.Caps)
}

// Clone returns a deep copy of p (copy_poly): the Caps slice is
// reallocated so that mutating the clone's caps never aliases p's.
func (p Polygon) Clone() Polygon {
	q := Polygon{ID: p.ID, Pixel: p.Pixel, Weight: p.Weight}
	if len(p.Caps) > 0 {
		q.Caps = make([]spherical.Cap, len(p.Caps))
		copy(q.Caps, p.Caps)
	}
	return q
}

// WithExtraCaps returns a clone of p with extra appended to its cap list
// (poly_poly / poly_polyn: "A∩B is A with B's caps appended"). p itself
// is not mutated.
func (p Polygon) WithExtraCaps(extra ...spherical.Cap) Polygon {
	q := p.Clone()
	q.Caps = append(q.Caps, extra...)
	return q
}

// SmallestCap returns the index and effective cm (Cap.EffectiveCM) of the
// cap of p with the smallest effective extent (cmminf.c). Used by
// partition to choose a lasso axis.
// Returns ErrNoCaps if p has no caps.
func (p Polygon) SmallestCap() (int, spherical.CM, error) {
	if len(p.Caps) == 0 {
		return -1, spherical.CM{}, ErrNoCaps
	}
	minIdx := 0
	minCM := p.Caps[0].EffectiveCM()
	for i := 1; i < len(p.Caps); i++ {
		cm := p.Caps[i].EffectiveCM()
		if cm.LessOrEqual(minCM) {
			minIdx, minCM = i, cm
		}
	}
	return minIdx, minCM, nil
}
