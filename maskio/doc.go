// Package maskio reads and writes the textual "mask" polygon file
// format: a header line naming the polygon count, followed by one block
// per polygon —
//
//	polygon <id> ( <n> caps, <weight>, <pixel>, <area>):
//	 <rx> <ry> <rz> <cm>
//	 ...
//
// one cap line per cap of the polygon, each giving the cap's axis as a
// unit vector and its cm extent. A negative cm denotes a complemented
// cap, matching spherical.FromSignedCM's convention.
//
// This is a deliberately narrowed rendition of the original format.h
// "format" struct: only the fields spec.md §6 calls out as in-scope
// (id, cap list, weight, pixel, area) are read or written. Angular-unit
// conversion, coordinate-frame transforms, and the other format fields
// (outprecision, phase convention, healpix weight files, ...) are out of
// scope per spec.md §1 and are not represented here.
package maskio
