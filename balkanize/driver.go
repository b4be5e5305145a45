package balkanize

import (
	"github.com/katalvlaran/skymask/fragment"
	"github.com/katalvlaran/skymask/partition"
	"github.com/katalvlaran/skymask/pixel"
	"github.com/katalvlaran/skymask/polygon"
)

// Balkanize fragments and partitions input into a disjoint, connected
// output set (balkanize_polys, §4). It never returns a non-nil error:
// every per-polygon failure (a degenerate prune, a partition that found
// no lasso with ForceSplit off) is caught, logged through
// Config.Logger as a bounded Warning, and the offending polygon is
// dropped rather than aborting the whole run — mirroring CARRY_ON_REGARDLESS
// (§4.6). The error return exists only so that invalid Config values or
// future fatal conditions have somewhere to go.
func Balkanize(input []polygon.Polygon, cfg Config) (Result, error) {
	sink := newWarningSink(cfg.MaxWarnings, cfg.Logger)

	live := stage0Prepare(input, cfg, sink)

	idx := pixel.Build(live)
	var out []polygon.Polygon
	maxPixel := len(idx.Total) - 1
	for p := 0; p <= maxPixel; p++ {
		begin, end := idx.Bucket(p)
		if begin == end {
			continue
		}
		out = append(out, balkanizeBucket(live[begin:end], cfg, sink)...)
	}

	out, partial := stage2Partition(out, cfg, sink)
	final := stage3Finalize(out, cfg)

	return Result{
		Polygons:          final,
		Warnings:          sink.list,
		WarningsDropped:   sink.dropped,
		PartialPartitions: partial,
	}, nil
}

// stage0Prepare clones and prunes every input polygon, dropping any that
// turn out empty with a warning each, and pixel-sorts the survivors
// (§4.5 stage 0). A
// polygon that prunes to the whole sphere is kept as-is: a whole-sphere
// region is a legitimate (if unusual) mask component.
func stage0Prepare(input []polygon.Polygon, cfg Config, sink *warningSink) []polygon.Polygon {
	live := make([]polygon.Polygon, 0, len(input))
	for _, src := range input {
		p := src.Clone()
		res, err := polygon.Prune(&p, cfg.Tol)
		if err != nil {
			sink.add(p.ID, "dropped during initial prune: "+err.Error())
			continue
		}
		if res.Outcome == polygon.PruneEmpty {
			sink.add(p.ID, "dropped during initial prune: empty region")
			continue
		}
		live = append(live, p)
	}
	pixel.SortByPixel(live)
	return live
}

// balkanizeBucket fragments every polygon in a single pixel bucket
// against every other polygon sharing that bucket (stage 1, §4.2).
// Polygons sharing a pixel are the only ones that can overlap, so this
// confines the O(n^2) pairwise comparison to bucket-local work.
//
// Each original bucket polygon i owns a current fragment set, starting
// as {bucket[i]} and shrinking every time it is fragmented against
// another bucket polygon j: current[i] is replaced by the Remainder of
// fragmenting each of its current pieces against bucket[j], plus any
// intersection piece kept along the way. The intersection piece a∩b is
// only kept once per overlapping pair, by the later (higher-index)
// polygon's pass — discardIntersection is true exactly when i<j, so the
// earlier polygon always discards the overlap and leaves it for the
// later polygon to claim. A kept intersection re-enters current[i]
// rather than going straight to out, so it keeps getting fragmented
// against every remaining j in the bucket: with three mutually
// overlapping polygons, the piece kept from i's pass against one j must
// still be split against the next j before it can be considered final,
// or the same triple-overlap region ends up claimed by two different
// finalized pieces.
func balkanizeBucket(bucket []polygon.Polygon, cfg Config, sink *warningSink) []polygon.Polygon {
	n := len(bucket)
	current := make([][]polygon.Polygon, n)
	for i := range bucket {
		current[i] = []polygon.Polygon{bucket[i]}
	}

	var out []polygon.Polygon
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var survivors []polygon.Polygon
			for _, frag := range current[i] {
				res, err := fragment.Fragment(frag, bucket[j], i < j, cfg.Tol)
				if err != nil {
					sink.add(frag.ID, "dropped during fragmentation: "+err.Error())
					continue
				}
				if res.NoOp {
					survivors = append(survivors, frag)
					continue
				}
				survivors = append(survivors, res.Remainder...)
				if res.Intersection != nil {
					// Intersection is only kept when i>j, i.e. bucket[i]
					// is the later (winning) polygon on overlap (§4.2's
					// tie-break); it already carries bucket[i]'s own
					// ID/Pixel/Weight via frag's lineage, reasserted here
					// for clarity rather than left implicit. It joins
					// survivors rather than out: a later j in this same
					// loop may still need to carve it up further.
					piece := *res.Intersection
					piece.ID = bucket[i].ID
					piece.Pixel = bucket[i].Pixel
					piece.Weight = bucket[i].Weight
					survivors = append(survivors, piece)
				}
			}
			current[i] = survivors
			if len(current[i]) == 0 {
				break
			}
		}
		out = append(out, current[i]...)
	}
	return out
}

// stage2Partition connects every polygon in place (stage 2, §4.3),
// appending any extra pieces partition produces directly onto polys —
// iterating by index rather than range lets newly appended pieces be
// partitioned in their own turn too.
func stage2Partition(polys []polygon.Polygon, cfg Config, sink *warningSink) ([]polygon.Polygon, int) {
	partitionCfg := partition.DefaultConfig(
		partition.WithMaxLassoAdjust(cfg.LassoAdjust),
		partition.WithForceSplit(cfg.ForceSplit),
		partition.WithOverwriteOriginal(cfg.OverwriteMode),
	)

	partial := 0
	for i := 0; i < len(polys); i++ {
		res, err := partition.Partition(&polys[i], cfg.Tol, partitionCfg)
		if err != nil {
			sink.add(polys[i].ID, "dropped during partitioning: "+err.Error())
			polys = append(polys[:i], polys[i+1:]...)
			i--
			continue
		}
		if res.Outcome == partition.Partial {
			partial++
		}
		for _, piece := range res.Pieces {
			piece.ID = polys[i].ID
			piece.Pixel = polys[i].Pixel
			piece.Weight = polys[i].Weight
			polys = append(polys, piece)
		}
	}
	return polys, partial
}

// stage3Finalize prunes every polygon once more (catching anything
// partition's lasso splits left degenerate), stably re-sorts by pixel,
// and reassigns ids per cfg.Renumber (§4.5 stage 3).
func stage3Finalize(polys []polygon.Polygon, cfg Config) []polygon.Polygon {
	final := make([]polygon.Polygon, 0, len(polys))
	for _, p := range polys {
		res, err := polygon.Prune(&p, cfg.Tol)
		if err != nil || res.Outcome == polygon.PruneEmpty {
			continue
		}
		final = append(final, p)
	}
	pixel.SortByPixel(final)

	switch cfg.Renumber {
	case RenumberSequential:
		for i := range final {
			final[i].ID = int64(i)
		}
	case RenumberByPixel:
		for i := range final {
			final[i].ID = int64(final[i].Pixel)
		}
	case RenumberPreserve:
		// Leave ids untouched.
	}
	return final
}
