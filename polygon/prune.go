package polygon

import (
	"math"

	"github.com/katalvlaran/skymask/spherical"
)

// PruneOutcome classifies the result of Prune, replacing the C
// implementation's overloaded integer return value (0 = ok, 1 = ok but
// changed, 2 = empty, ... ) with an explicit, enumerable variant per the
// originating specification's migration notes (§9, "out-parameter
// pointer soup" / "distinguish Success, Empty, WholeSphere, Fail as
// explicit variants").
type PruneOutcome int

const (
	// PruneSuccess means p remains a non-degenerate region, possibly
	// with some caps dropped or merged.
	PruneSuccess PruneOutcome = iota
	// PruneEmpty means p's region is empty: a null cap was present, two
	// caps were mutually exclusive, or the caps bound zero area.
	PruneEmpty
	// PruneWholeSphere means every cap was vacuous; p.Caps is left
	// empty (NumCaps()==0 denotes the whole sphere).
	PruneWholeSphere
)

// PruneResult is the typed outcome of Prune.
type PruneResult struct {
	Outcome PruneOutcome
}

// Prune performs redundancy analysis on p's caps in place (prune_poly,
// §4.1):
//
//   - Returns PruneEmpty if any cap is null, if two caps are mutually
//     exclusive, or if the polygon bounds a zero-area region.
//   - Returns PruneWholeSphere if all caps are vacuous; p.Caps becomes
//     empty.
//   - Otherwise drops caps implied by the intersection of the others and
//     coalesces near-duplicate caps within tol, returning PruneSuccess.
//
// tol is an angular tolerance (as a CM value); near-coincident cap
// boundaries within tol are merged. The returned error is always nil:
// Prune has no check for ill-conditioned numerics and never reports
// ErrDegenerate.
func Prune(p *Polygon, tol spherical.CM) (PruneResult, error) {
	// Null cap or mutual exclusion -> empty.
	for _, c := range p.Caps {
		if c.IsNull() {
			p.Caps = nil
			return PruneResult{Outcome: PruneEmpty}, nil
		}
	}
	for i := 0; i < len(p.Caps); i++ {
		for j := i + 1; j < len(p.Caps); j++ {
			if p.Caps[i].ExclusiveOf(p.Caps[j]) {
				p.Caps = nil
				return PruneResult{Outcome: PruneEmpty}, nil
			}
		}
	}

	// Drop vacuous (whole-sphere) caps; they contribute no constraint.
	kept := p.Caps[:0]
	for _, c := range p.Caps {
		if !c.IsVacuous() {
			kept = append(kept, c)
		}
	}
	p.Caps = kept
	if len(p.Caps) == 0 {
		return PruneResult{Outcome: PruneWholeSphere}, nil
	}

	// Coalesce near-duplicate caps sharing (to within tol) the same
	// axis, and drop caps implied by another cap on the same axis.
	p.Caps = dedupeCollinear(p.Caps, tol)

	// Drop caps on a shared axis implied by a tighter cap also present.
	p.Caps = dropImplied(p.Caps, tol)

	if len(p.Caps) == 0 {
		return PruneResult{Outcome: PruneWholeSphere}, nil
	}
	if isZeroArea(p.Caps) {
		p.Caps = nil
		return PruneResult{Outcome: PruneEmpty}, nil
	}

	return PruneResult{Outcome: PruneSuccess}, nil
}

// dedupeCollinear merges caps whose axes coincide within tol, keeping
// only the tightest (most restrictive) constraint among duplicates of
// the same complement sign.
func dedupeCollinear(caps []spherical.Cap, tol spherical.CM) []spherical.Cap {
	out := make([]spherical.Cap, 0, len(caps))
	used := make([]bool, len(caps))
	for i := range caps {
		if used[i] {
			continue
		}
		best := caps[i]
		used[i] = true
		for j := i + 1; j < len(caps); j++ {
			if used[j] {
				continue
			}
			if caps[j].Complement != best.Complement {
				continue
			}
			sep := spherical.CMBetween(best.Axis, caps[j].Axis)
			if sep.LessOrEqual(tol) {
				// Same axis (within tol): keep the tighter cap.
				if caps[j].Implies(best) {
					// caps[j] is the looser one; best stays.
				} else if best.Implies(caps[j]) {
					best = caps[j]
				}
				used[j] = true
			}
		}
		out = append(out, best)
	}
	return out
}

// dropImplied removes any cap that is implied by another surviving cap
// sharing (within tol) the same axis and complement sign — Cap.Implies's
// comparison is only meaningful between caps centered on the same axis,
// so a different axis can never make one cap redundant here regardless
// of how its Extent compares.
func dropImplied(caps []spherical.Cap, tol spherical.CM) []spherical.Cap {
	out := make([]spherical.Cap, 0, len(caps))
	for i, c := range caps {
		redundant := false
		for j, other := range caps {
			if i == j {
				continue
			}
			if other.Complement != c.Complement {
				continue
			}
			if spherical.CMBetween(other.Axis, c.Axis).GreaterThan(tol) {
				continue
			}
			if c.Implies(other) && !(other.Implies(c) && j < i) {
				redundant = true
				break
			}
		}
		if !redundant {
			out = append(out, c)
		}
	}
	return out
}

// isZeroArea reports whether the intersection of caps bounds a region of
// zero area without being flagged empty by pairwise exclusion: in
// particular, two non-complemented caps whose boundary circles are
// externally tangent (separation exactly equal to the sum of radii)
// intersect in a single point.
func isZeroArea(caps []spherical.Cap) bool {
	for i := 0; i < len(caps); i++ {
		for j := i + 1; j < len(caps); j++ {
			a, b := caps[i], caps[j]
			if a.Complement || b.Complement {
				continue
			}
			sep := spherical.CMBetween(a.Axis, b.Axis)
			cosSep := 1 - sep.Float64()
			cosA := 1 - a.Extent.Float64()
			cosB := 1 - b.Extent.Float64()
			sinA := sinFromCos(cosA)
			sinB := sinFromCos(cosB)
			cosSum := cosA*cosB - sinA*sinB
			if math.Abs(cosSep-cosSum) < 1e-13 {
				return true
			}
		}
	}
	return false
}

func sinFromCos(cosv float64) float64 {
	s := 1 - cosv*cosv
	if s < 0 {
		s = 0
	}
	return math.Sqrt(s)
}
