// Package fragment implements pairwise polygon fragmentation
// (fragment_poly): splitting a polygon A against a second polygon B into
// the disjoint pieces A\B, and optionally A∩B.
//
// What: given A, B and a discard flag, Fragment produces zero or more
// A\B pieces (one per cap of B, after pruning collapses the redundant
// ones) plus, unless discarded, a single A∩B piece.
//
// Why: set subtraction has no direct representation in a cap-intersection
// polygon system — only intersection does. A\B is rewritten as A
// intersected with the complement of B, and the complement of an
// intersection-of-caps is a union, which is disjointified into one piece
// per cap of B using the standard inclusion-exclusion identity: piece k
// keeps caps 0..k-1 of B un-complemented and complements cap k. The
// pieces are pairwise disjoint by construction, so no point is ever
// counted twice and no separate deduplication pass is needed.
//
// Complexity: O(np_B) candidate pieces, each pruned in O(np_A+np_B) per
// §4.1; O(np_B * (np_A+np_B)) overall for one Fragment call.
package fragment
