// Package balkanize is the top-level driver: given an array of input
// polygons it prunes, fragments, partitions, and re-sorts them into a
// set of disjoint, connected output polygons whose union reproduces the
// input's covered area exactly (§4.5).
//
// What: Balkanize runs four stages — an initial prune and pixel sort
// (stage 0), pixel-bucketed pairwise fragmentation (stage 1, using the
// fragment package's i<j/i>j tie-break rule so the later input polygon
// wins on overlap), connectivity partitioning (stage 2, via the
// partition package), and a final prune, stable re-sort, and id
// reassignment (stage 3).
//
// Why: fragmenting every polygon against every other directly is
// O(N^2); since polygons sharing a pixel id are the only ones that can
// possibly overlap (the pixelisation invariant), stage 1 restricts the
// pairwise comparison to each pixel's bucket via the pixel package's
// index, turning the dominant cost into a sum of local O(k^2) terms.
//
// Ownership model: the originating implementation manages a single
// output array of polygon slots, nulling and compacting in place as
// fragments are produced and consumed. This Go rendition keeps per-
// original-polygon fragment sets as ordinary slices (see
// balkanizeBucket in driver.go) — append/slice reassignment plays the
// same role the null-slot bookkeeping played, without the pointer
// aliasing hazards §3's "ownership lifecycle" note warns about.
//
// Complexity: O(sum over pixels of k_p^2) for stage 1 where k_p is a
// pixel's bucket size, plus O(n log n) for the two stable sorts.
package balkanize
