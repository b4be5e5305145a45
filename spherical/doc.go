// Package spherical provides the numeric primitives that every other
// package in this module builds on: unit vectors, spherical caps, and the
// cm = 1 − cos θ distance that the whole mask algebra is expressed in.
//
// What:
//
//   - Vec3 is a unit vector on the sphere (an axis, or a point to test).
//   - Cap is a spherical disk {x̂ : 1 − r̂·x̂ < cm}, or its complement when
//     cm is negative (see Cap.Complement).
//   - CM is a higher-than-double-precision scalar used for every cm
//     computation and comparison, so that near-tangent caps and
//     near-antipodal points do not lose the few bits of precision that
//     decide whether a boundary crosses a tolerance.
//
// Why:
//
//   - cm is a numerically well-behaved proxy for the angular radius θ:
//     it stays well-conditioned near θ=0 and θ=π, where 1−cos θ does not
//     suffer the cancellation that comparing raw cosines would.
//   - Fragmenting and partitioning polygons is dominated by deciding
//     whether two cap boundaries coincide within a tolerance; that
//     decision is only as good as the precision of the cm arithmetic
//     feeding it (see §9 of the originating specification).
//
// Complexity: every operation in this package is O(1).
package spherical
