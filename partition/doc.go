// Package partition implements connectivity partitioning
// (partition_poly / part_poly, §4.3): splitting a polygon whose region
// spans two or more disconnected components on the sphere into
// single-component pieces, so downstream area and harmonic routines
// never conflate components that happen to share a cap intersection.
//
// Algorithm (the lasso method): enumerate the polygon's boundary loops
// via the polygon package; if at most one of them is a crossing loop
// (standalone full-circle hole loops are not counted), the polygon is
// treated as connected. Otherwise pick one loop, find a "lasso" cap
// centred on the polygon's smallest-cap axis that strictly contains the
// chosen loop while excluding at least one other loop (shrinking the
// lasso's radius toward the loop's minimal enclosing radius when a wider
// guess also snares a neighboring loop), and split the polygon into the
// lassoed piece and its complement. The complement is recursed on until
// every piece is single-component.
//
// Grounded the same way the originating algorithm is: connected
// components are ultimately a graph-connectivity question (compare
// gridgraph's flood fill over a cell grid), except the "grid" here is
// the polygon's own set of boundary loops and the "edges" are geometric
// containment tests rather than adjacency.
//
// Complexity: O(L^2) per polygon to scan loops for a lasso (L = number
// of loops), times O(MaxLassoAdjust) retries, recursing at most L-1
// times.
package partition
