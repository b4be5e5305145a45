// Package polygon defines the Polygon type — an ordered list of spherical
// caps whose intersection describes a region of the sphere — and the
// housekeeping operations every higher-level routine in this module
// builds on: growth-aware allocation, cloning, cap pruning, point-in-
// polygon testing, and boundary/vertex enumeration.
//
// What:
//
//   - Polygon: caps + id/pixel/weight attributes (§3 of the originating
//     specification).
//   - Prune: redundancy analysis that collapses near-duplicate caps,
//     drops caps implied by others, and detects the EMPTY and
//     WHOLE_SPHERE degenerate cases (§4.1).
//   - PointIn: a point lies in a polygon iff it lies in every cap (gptin).
//   - Loops: boundary-arc enumeration grouping a polygon's boundary into
//     closed loops (gverts/gvlims), the input to connectivity
//     partitioning.
//
// Why:
//
//   - Every downstream algorithm (fragment, partition, the balkanize
//     driver) operates on Polygon values and relies on Prune having run
//     so that caps are never null, are never duplicated, and axes are
//     unit length (the invariants of §3).
//
// Ownership:
//
//   - Polygon is a plain value type (a caps slice plus three scalar
//     fields); callers own it directly. The "owned slot that may be
//     replaced in place" ownership model used by fragment and partition
//     (§3, "Ownership lifecycle") is expressed with *Polygon at the call
//     sites that need it (partition's slot argument), not inside this
//     package; balkanize keeps fragment sets as ordinary slices.
package polygon
