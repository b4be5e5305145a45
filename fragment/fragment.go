package fragment

import (
	"github.com/katalvlaran/skymask/polygon"
	"github.com/katalvlaran/skymask/spherical"
)

// Result is the typed outcome of Fragment (fragment_poly, §4.2),
// replacing the originating implementation's signed integer return code
// ("0 new pieces", "-1 on failure") with explicit fields.
type Result struct {
	// Remainder holds the pieces tiling A\B: zero, one, or up to
	// len(B.Caps) polygons, already pruned.
	Remainder []polygon.Polygon

	// Intersection holds A∩B, pruned, when it is non-empty and the
	// caller did not ask to discard it. Nil otherwise.
	Intersection *polygon.Polygon

	// NoOp is true when A is left entirely unchanged under its existing
	// owner: either A and B do not overlap at all (so A∩B is empty and
	// A\B equals A), or A lies entirely inside B and the caller asked to
	// keep the intersection (so A∩B equals A and A\B is empty — A is
	// already the intersection piece, verbatim). When A lies entirely
	// inside B but the caller asked to discard the intersection, Result
	// is the zero value instead (Remainder and Intersection both empty):
	// A\B is empty and A∩B is being left for the other polygon's own
	// pass to claim, so A contributes nothing at all in this step.
	NoOp bool
}

// Fragment splits a against b (fragment_poly, §4.2): producing the
// pieces of a\b and, unless discardIntersection is set, the single piece
// a∩b.
//
// a\b is built by adding the complement of each of b's caps to a, one
// cap at a time: piece k keeps caps 0..k-1 of b un-complemented and
// complements cap k. This is the standard disjointification of a union
// of complements (De Morgan applied to a∩b's complement), and the
// resulting pieces are pairwise disjoint by construction — no piece
// needs to be checked against any other piece for overlap.
//
// tol is the angular tolerance passed through to polygon.Prune for every
// candidate piece.
func Fragment(a, b polygon.Polygon, discardIntersection bool, tol spherical.CM) (Result, error) {
	// If every cap of b is already implied by some cap of a, a lies
	// entirely inside b: a∩b equals a verbatim and a\b is empty. No
	// fragmentation is needed (§4.2 step 3).
	entirelyInside := true
	for _, c := range b.Caps {
		if !impliedBySingleCap(a.Caps, c, tol) {
			entirelyInside = false
			break
		}
	}
	if entirelyInside {
		if discardIntersection {
			// a\b is empty, and the caller does not want a∩b recorded
			// here — the other polygon's own pass against a will claim
			// this region instead (§4.5's i<j/i>j tie-break). a
			// contributes nothing further in this step: not a no-op,
			// an empty one.
			return Result{}, nil
		}
		// a∩b equals a exactly; a is already the intersection piece, so
		// it stays under its current owner unchanged.
		return Result{NoOp: true}, nil
	}

	intersectionPiece := a.WithExtraCaps(b.Caps...)
	ires, err := polygon.Prune(&intersectionPiece, tol)
	if err != nil {
		return Result{}, err
	}
	if ires.Outcome == polygon.PruneEmpty {
		// a and b do not overlap: a\b equals a verbatim (§4.2 step 4).
		return Result{NoOp: true}, nil
	}

	var out Result
	for k := 0; k < len(b.Caps); k++ {
		extra := make([]spherical.Cap, 0, k+1)
		extra = append(extra, b.Caps[:k]...)
		extra = append(extra, b.Caps[k].Complemented())
		piece := a.WithExtraCaps(extra...)
		pres, err := polygon.Prune(&piece, tol)
		if err != nil {
			return Result{}, err
		}
		if pres.Outcome == polygon.PruneEmpty {
			continue
		}
		out.Remainder = append(out.Remainder, piece)
	}

	if !discardIntersection {
		out.Intersection = &intersectionPiece
	}
	return out, nil
}

// impliedBySingleCap reports whether some cap d in caps is already a
// subset of c (d shares c's axis within tol and c.Implies(d)): a region
// already confined to d is then automatically confined to c too, so
// intersecting it with c would not further restrict it. Note the
// direction — this asks whether c is redundant GIVEN caps, which is
// c.Implies(d), not d.Implies(c).
func impliedBySingleCap(caps []spherical.Cap, c spherical.Cap, tol spherical.CM) bool {
	for _, d := range caps {
		if d.Complement != c.Complement {
			continue
		}
		if spherical.CMBetween(d.Axis, c.Axis).GreaterThan(tol) {
			continue
		}
		if c.Implies(d) {
			return true
		}
	}
	return false
}
