package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/kjhsato/pathtrace/pkg/core"
)

// WritePPM writes rows (already gamma-corrected and clamped to
// [0, 0.999] by the integrator, top row first) as a bit-exact P3
// PPM: header "P3\n<W> <H>\n255\n" followed by one "r g b" line per
// pixel, scanline-major top to bottom, left to right.
//
// Each component additionally passes through go-colorful's Clamped
// and a final clamp to 0.999, so an upstream texture or material that
// produced a slightly out-of-range (or exactly 1.0) value never
// quantises to 256.
func WritePPM(w io.Writer, width, height int, rows [][]core.Colour) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", width, height); err != nil {
		return errors.Wrap(err, "writing PPM header")
	}

	for _, row := range rows {
		for _, c := range row {
			r, g, b := quantise(c)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", r, g, b); err != nil {
				return errors.Wrap(err, "writing PPM pixel")
			}
		}
	}

	return errors.Wrap(buf.Flush(), "flushing PPM output")
}

// quantise clamps a linear colour through go-colorful and scales it
// to an 8-bit integer triple, per spec.md's "scale by 256, floor"
// rule. Clamped() only bounds components to [0,1], so a component of
// exactly 1.0 is clamped again to 0.999 before scaling — otherwise
// 256*1.0 overflows the 8-bit range.
func quantise(c core.Colour) (r, g, b int) {
	clamped := colorful.Color{R: c.X, G: c.Y, B: c.Z}.Clamped()
	return int(256 * math.Min(0.999, clamped.R)), int(256 * math.Min(0.999, clamped.G)), int(256 * math.Min(0.999, clamped.B))
}
