package partition

import (
	"github.com/katalvlaran/skymask/polygon"
	"github.com/katalvlaran/skymask/spherical"
)

// Outcome classifies the result of Partition, replacing the originating
// implementation's signed integer return code (0 = full success, 1 =
// partial, -1 = error) with an explicit variant.
type Outcome int

const (
	// Complete means every resulting piece is single-component.
	Complete Outcome = iota
	// Partial means Config.ForceSplit was used at least once because no
	// excluding lasso could be found; the caller is informed that
	// partitioning may not be geometrically ideal but every piece is
	// still returned.
	Partial
)

// Result is the typed outcome of Partition.
type Result struct {
	Outcome Outcome
	// Pieces holds every additional polygon produced, not counting the
	// in-place replacement of slot when Config.OverwriteOriginal is set.
	Pieces []polygon.Polygon
}

// Partition splits *slot into connected pieces in place (partition_poly,
// §4.3). If slot's region is already single-component, it returns
// Complete with no pieces and leaves *slot untouched. Otherwise it
// selects one boundary loop, builds a lasso cap around it, and produces
// two children: the lassoed piece and its complement, recursing on the
// complement until every piece is single-component.
//
// A boundary loop that is a single standalone full circle (no crossings
// with any other cap) is always a hole bored into the surrounding
// region, never a separator between two components — removing an open
// disk from the interior of a connected region leaves it connected. Only
// loops built from actual cap-boundary crossings ("crossing loops") are
// candidate component separators, so Partition only attempts a split
// when two or more crossing loops are present; a polygon with any number
// of hole loops but at most one crossing loop is left untouched.
func Partition(slot *polygon.Polygon, tol spherical.CM, cfg Config) (Result, error) {
	loops := polygon.Loops(*slot, tol)
	crossing := crossingLoops(loops)
	if len(crossing) <= 1 {
		return Result{Outcome: Complete}, nil
	}
	return partitionLoops(slot, loops, crossing, tol, cfg)
}

// crossingLoops returns the indices of loops built from actual cap
// crossings, excluding standalone full-circle hole loops.
func crossingLoops(loops []polygon.Loop) []int {
	var out []int
	for i, l := range loops {
		if len(l.Arcs) == 1 && l.Arcs[0].FullCircle {
			continue
		}
		out = append(out, i)
	}
	return out
}

func partitionLoops(slot *polygon.Polygon, loops []polygon.Loop, crossing []int, tol spherical.CM, cfg Config) (Result, error) {
	p := *slot
	axisIdx, _, err := p.SmallestCap()
	if err != nil {
		return Result{}, err
	}
	axis := p.Caps[axisIdx].Axis

	lIdx := crossing[0]
	others := crossing[1:]
	loop := loops[lIdx]

	partial := false
	radius, found := findLasso(p, axis, loops, lIdx, others, cfg.MaxLassoAdjust)
	if !found {
		if !cfg.ForceSplit {
			return Result{}, ErrNoLasso
		}
		_, lMax := loopAngularRange(p, axis, loop)
		radius = lMax
		partial = true
	}

	lasso := spherical.Cap{Axis: axis, Extent: cmFromTheta(radius)}

	lassoed := p.WithExtraCaps(lasso)
	if _, err := polygon.Prune(&lassoed, tol); err != nil {
		return Result{}, err
	}

	rest := p.WithExtraCaps(lasso.Complemented())
	restRes, err := polygon.Prune(&rest, tol)
	if err != nil {
		return Result{}, err
	}

	var pieces []polygon.Polygon
	if cfg.OverwriteOriginal {
		*slot = lassoed
	} else {
		pieces = append(pieces, lassoed)
	}

	if restRes.Outcome != polygon.PruneEmpty {
		subResult, err := Partition(&rest, tol, cfg)
		if err != nil {
			return Result{}, err
		}
		pieces = append(pieces, rest)
		pieces = append(pieces, subResult.Pieces...)
		if subResult.Outcome == Partial {
			partial = true
		}
	}

	outcome := Complete
	if partial {
		outcome = Partial
	}
	return Result{Outcome: outcome, Pieces: pieces}, nil
}
