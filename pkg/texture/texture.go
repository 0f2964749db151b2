// Package texture implements spatially-varying colour sources:
// SolidColour, Checker, Noise, Marble and ImageTexture.
package texture

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"github.com/pkg/errors"

	"github.com/kjhsato/pathtrace/pkg/core"
)

// Texture is a pure function from surface coordinates and a world
// point to a colour; it has no side effects and no mutable state.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Colour
}

// SolidColour is a texture with a single constant colour everywhere.
type SolidColour struct {
	Colour core.Colour
}

// NewSolidColour creates a SolidColour texture.
func NewSolidColour(colour core.Colour) *SolidColour {
	return &SolidColour{Colour: colour}
}

func (s *SolidColour) Value(u, v float64, p core.Vec3) core.Colour {
	return s.Colour
}

// Checker alternates between two sub-textures in a 3-D-space check
// pattern. This is the default per the resolved checker ambiguity
// (see SPEC_FULL.md Open Question 1); NewUVChecker below builds the
// alternate UV-space variant.
type Checker struct {
	Even, Odd Texture
	uvSpace   bool
}

// NewChecker creates a 3-D-space checker texture from two colours.
func NewChecker(even, odd core.Colour) *Checker {
	return &Checker{Even: NewSolidColour(even), Odd: NewSolidColour(odd)}
}

// NewCheckerTextures creates a 3-D-space checker texture from two sub-textures.
func NewCheckerTextures(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewUVChecker creates the alternate UV-space checker variant, kept
// for completeness per the resolved Open Question.
func NewUVChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd, uvSpace: true}
}

func (c *Checker) Value(u, v float64, p core.Vec3) core.Colour {
	var sines float64
	if c.uvSpace {
		sines = math.Sin(50*u) * math.Sin(50*v)
	} else {
		sines = math.Sin(20*p.X) * math.Sin(20*p.Y) * math.Sin(20*p.Z)
	}
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

const turbulenceDepth = 7

// Noise is a procedural texture driven directly by Perlin turbulence.
type Noise struct {
	Perlin *core.Perlin
	Scale  float64
}

// NewNoise creates a Noise texture backed by the given Perlin table.
func NewNoise(perlin *core.Perlin, scale float64) *Noise {
	return &Noise{Perlin: perlin, Scale: scale}
}

func (n *Noise) Value(u, v float64, p core.Vec3) core.Colour {
	t := n.Perlin.Turbulence(p.Multiply(n.Scale), turbulenceDepth)
	return core.Colour{X: 1, Y: 1, Z: 1}.Multiply(t)
}

// Marble warps a sine wave along Z by turbulence, producing
// vein-like bands.
type Marble struct {
	Perlin *core.Perlin
	Scale  float64
}

// NewMarble creates a Marble texture backed by the given Perlin table.
func NewMarble(perlin *core.Perlin, scale float64) *Marble {
	return &Marble{Perlin: perlin, Scale: scale}
}

func (m *Marble) Value(u, v float64, p core.Vec3) core.Colour {
	t := m.Perlin.Turbulence(p, turbulenceDepth)
	s := 0.5 * (1 + math.Sin(m.Scale*p.Z+10*t))
	return core.Colour{X: 1, Y: 1, Z: 1}.Multiply(s)
}

// ImageTexture samples an 8-bit image with nearest-neighbour
// lookup, treating it as linear colour divided by 255.
type ImageTexture struct {
	img           image.Image
	width, height int
}

// NewImageTextureFromFile loads an image texture from a JPEG, PNG or
// BMP file. A missing or malformed file is a fatal I/O error.
func NewImageTextureFromFile(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening texture image %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding texture image %q", path)
	}

	bounds := img.Bounds()
	return &ImageTexture{img: img, width: bounds.Dx(), height: bounds.Dy()}, nil
}

func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Colour {
	if t.width == 0 || t.height == 0 {
		return core.Colour{X: 0, Y: 1, Z: 1} // cyan debug marker, matches the book's convention
	}

	u = clamp01(u)
	v = 1 - clamp01(v) // flip v: image origin top-left, UV origin bottom-left

	i := int(u * float64(t.width))
	j := int(v * float64(t.height))
	if i >= t.width {
		i = t.width - 1
	}
	if j >= t.height {
		j = t.height - 1
	}

	bounds := t.img.Bounds()
	r, g, b, _ := t.img.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()
	const scale = 1.0 / 65535.0
	return core.Colour{X: float64(r) * scale, Y: float64(g) * scale, Z: float64(b) * scale}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
