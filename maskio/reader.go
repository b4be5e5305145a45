package maskio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/skymask/polygon"
	"github.com/katalvlaran/skymask/spherical"
)

// Read parses a mask file from r into a slice of polygons (polygon.h's
// "polygon <id> ( <n> caps, ...):" block format). The leading count
// header line is optional: Read tolerates a file that opens directly on
// the first polygon block, logging nothing and simply reading blocks
// until EOF.
func Read(r io.Reader) ([]polygon.Polygon, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []polygon.Polygon
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "polygon") {
			// The optional leading "<n> polygons" count header, or a
			// blank/comment line; neither carries data Read needs.
			continue
		}
		p, n, err := parseHeader(line)
		if err != nil {
			return nil, err
		}
		caps := make([]spherical.Cap, 0, n)
		for len(caps) < n {
			if !scanner.Scan() {
				return nil, fmt.Errorf("maskio: polygon %d: %w", p.ID, ErrCapCountMismatch)
			}
			capLine := strings.TrimSpace(scanner.Text())
			if capLine == "" {
				continue
			}
			c, err := parseCapLine(capLine)
			if err != nil {
				return nil, fmt.Errorf("maskio: polygon %d: %w", p.ID, err)
			}
			caps = append(caps, c)
		}
		p.Caps = caps
		out = append(out, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseHeader parses a "polygon <id> ( <n> caps, <weight>, <pixel>, <area>):"
// line, returning the polygon with its id/weight/pixel set (caps left
// nil, to be filled by the caller) and the expected cap count.
func parseHeader(line string) (polygon.Polygon, int, error) {
	open := strings.Index(line, "(")
	close := strings.LastIndex(line, ")")
	if open < 0 || close < 0 || close < open {
		return polygon.Polygon{}, 0, ErrMalformedHeader
	}

	fields := strings.Fields(line[len("polygon"):open])
	if len(fields) != 1 {
		return polygon.Polygon{}, 0, ErrMalformedHeader
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return polygon.Polygon{}, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	inner := line[open+1 : close]
	parts := strings.Split(inner, ",")
	if len(parts) < 4 {
		return polygon.Polygon{}, 0, ErrMalformedHeader
	}

	capsField := strings.Fields(parts[0])
	if len(capsField) < 1 {
		return polygon.Polygon{}, 0, ErrMalformedHeader
	}
	n, err := strconv.Atoi(capsField[0])
	if err != nil {
		return polygon.Polygon{}, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return polygon.Polygon{}, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	pixel, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return polygon.Polygon{}, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	// parts[3] is the area annotation; Read does not recompute or
	// validate it (this package has no area integrator — see DESIGN.md).

	return polygon.Polygon{ID: id, Pixel: pixel, Weight: weight}, n, nil
}

// parseCapLine parses one "rx ry rz cm" cap line. The axis components
// are direction only and parsed at float64 (Vec3 is a float64 type
// throughout this module), but cm is parsed straight into a
// quad-precision spherical.CM via FromSignedCMString: a float64
// round-trip here would throw away any precision beyond ~15-17 digits
// the file was written with, undoing the quad-precision guarantee
// spherical.CM exists to preserve.
func parseCapLine(line string) (spherical.Cap, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return spherical.Cap{}, ErrMalformedCap
	}
	vals := make([]float64, 3)
	for i, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return spherical.Cap{}, fmt.Errorf("%w: %v", ErrMalformedCap, err)
		}
		vals[i] = v
	}
	axis := spherical.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
	unit, err := axis.Unit()
	if err != nil {
		return spherical.Cap{}, fmt.Errorf("%w: %v", ErrMalformedCap, err)
	}
	c, err := spherical.FromSignedCMString(unit, fields[3])
	if err != nil {
		return spherical.Cap{}, fmt.Errorf("%w: %v", ErrMalformedCap, err)
	}
	return c, nil
}
