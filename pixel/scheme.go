package pixel

import (
	"math"

	"github.com/katalvlaran/skymask/spherical"
)

// Scheme is the external pixelisation collaborator (§6): it assigns
// every direction on the sphere a pixel id at a fixed resolution, with
// the invariant that distinct pixel ids never share area, so a polygon
// whose region lies inside one pixel cannot overlap a polygon confined
// to a different pixel.
type Scheme interface {
	// PixelID returns the id of the pixel containing v.
	PixelID(v spherical.Vec3) int
	// NumPixels returns the total number of pixels at this scheme's
	// resolution.
	NumPixels() int
}

// RingScheme is a latitude-ring pixelisation: the sphere is divided into
// 2*Rings declination bands of equal height, and each band is divided
// into a number of equal-longitude cells roughly proportional to its
// angular circumference, so pixels have comparable area — the same
// design goal as HEALPix's ring scheme, without requiring an external
// HEALPix dependency.
type RingScheme struct {
	// Rings is the number of declination bands per hemisphere; the
	// total band count is 2*Rings.
	Rings int
}

// NewRingScheme returns a RingScheme with the given rings-per-hemisphere
// resolution, clamped to at least 1.
func NewRingScheme(rings int) RingScheme {
	if rings < 1 {
		rings = 1
	}
	return RingScheme{Rings: rings}
}

func (s RingScheme) bands() int { return 2 * s.Rings }

// PixelID returns a band/cell composite id, numbered south-to-north by
// band and then west-to-east by cell within the band.
func (s RingScheme) PixelID(v spherical.Vec3) int {
	bands := s.bands()
	z := clamp(v.Z, -1, 1)
	band := int((z + 1) / 2 * float64(bands))
	if band >= bands {
		band = bands - 1
	}
	cellsInBand := s.cellsInBand(band)

	lon := math.Atan2(v.Y, v.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	cell := int(lon / (2 * math.Pi) * float64(cellsInBand))
	if cell >= cellsInBand {
		cell = cellsInBand - 1
	}
	return s.bandStart(band) + cell
}

// NumPixels returns the total pixel count across every band.
func (s RingScheme) NumPixels() int {
	return s.bandStart(s.bands())
}

// cellsInBand returns the cell count for band, proportional to
// sin(colatitude) at the band's center: bands near the poles, where
// circles of latitude are short, get fewer cells than equatorial bands.
func (s RingScheme) cellsInBand(band int) int {
	bands := s.bands()
	zMid := (float64(band)+0.5)/float64(bands)*2 - 1
	colat := math.Acos(clamp(zMid, -1, 1))
	n := int(math.Round(4 * float64(s.Rings) * math.Sin(colat)))
	if n < 1 {
		n = 1
	}
	return n
}

func (s RingScheme) bandStart(band int) int {
	total := 0
	for b := 0; b < band; b++ {
		total += s.cellsInBand(b)
	}
	return total
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
