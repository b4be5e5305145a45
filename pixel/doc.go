// Package pixel provides the spatial bucketing index used by the
// balkanize driver to keep pairwise fragmentation local (§4.4).
//
// What: a Scheme maps a point on the sphere to an integer pixel id at
// some resolution, with the invariant that a polygon tagged with pixel p
// lies entirely inside that pixel. Index groups an already pixel-sorted
// slice of polygons into per-pixel buckets via two parallel arrays,
// start[pixel] and total[pixel], mirroring how gridgraph indexes a flat
// cell array by (width, height) instead of rebuilding an adjacency
// structure per query.
//
// Why: two polygons in different pixels at the same resolution cannot
// overlap, by the pixelisation invariant. Restricting the O(k^2)
// pairwise fragmentation comparison to one pixel's bucket turns an
// O(N^2) global pass into one that is linear in the number of pixels and
// quadratic only in local bucket occupancy.
//
// Complexity: Index construction is O(n) given an already-sorted slice;
// SortByPixel is O(n log n).
package pixel
