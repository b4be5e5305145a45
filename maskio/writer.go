package maskio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/skymask/polygon"
)

// Write serializes polys to w in mask file format, one "polygon <id> (
// <n> caps, <weight>, <pixel>, <area>):" block per polygon followed by
// its cap lines. The area field is always written as 0: this package
// carries no area integrator (see DESIGN.md), so round-tripping through
// Read/Write never claims an area value it did not independently verify.
func Write(w io.Writer, polys []polygon.Polygon) error {
	if _, err := fmt.Fprintf(w, "%d polygons\n", len(polys)); err != nil {
		return err
	}
	for _, p := range polys {
		if _, err := fmt.Fprintf(w, "polygon %d ( %d caps, %.15g, %d, 0):\n",
			p.ID, len(p.Caps), p.Weight, p.Pixel); err != nil {
			return err
		}
		for _, c := range p.Caps {
			// cm is rendered at full quad precision (spherical.CM.Text),
			// not %g'd through float64 first, so a round trip through
			// Read recovers the same 128-bit value it was written with.
			if _, err := fmt.Fprintf(w, " %.15g %.15g %.15g %s\n",
				c.Axis.X, c.Axis.Y, c.Axis.Z, c.SignedCM().Text()); err != nil {
				return err
			}
		}
	}
	return nil
}
