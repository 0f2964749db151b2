package texture

import (
	"math/rand"
	"testing"

	"github.com/kjhsato/pathtrace/pkg/core"
)

func TestSolidColourConstant(t *testing.T) {
	tex := NewSolidColour(core.Colour{X: 0.1, Y: 0.2, Z: 0.3})
	got := tex.Value(0.9, 0.1, core.Vec3{X: 100, Y: -50, Z: 3})
	if got != (core.Colour{X: 0.1, Y: 0.2, Z: 0.3}) {
		t.Errorf("Value = %v, want (0.1, 0.2, 0.3)", got)
	}
}

func TestCheckerAlternates3DSpace(t *testing.T) {
	even := core.Colour{X: 1, Y: 1, Z: 1}
	odd := core.Colour{X: 0, Y: 0, Z: 0}
	checker := NewChecker(even, odd)

	// sin(20*0)*sin(20*0)*sin(20*0) = 0, not < 0, so the origin is "even".
	if got := checker.Value(0, 0, core.Vec3{}); got != even {
		t.Errorf("Value at origin = %v, want even %v", got, even)
	}

	// sin(2)*sin(2)*sin(-2) < 0, so (0.1, 0.1, -0.1) is "odd".
	if got := checker.Value(0, 0, core.Vec3{X: 0.1, Y: 0.1, Z: -0.1}); got != odd {
		t.Errorf("Value at (0.1,0.1,-0.1) = %v, want odd %v", got, odd)
	}
}

func TestUVCheckerVariant(t *testing.T) {
	even := NewSolidColour(core.Colour{X: 1, Y: 1, Z: 1})
	odd := NewSolidColour(core.Colour{X: 0, Y: 0, Z: 0})
	checker := NewUVChecker(even, odd)

	if got := checker.Value(0, 0, core.Vec3{}); got != even.Colour {
		t.Errorf("Value(0,0,origin) = %v, want even", got)
	}
}

func TestNoiseAndMarbleNonNegative(t *testing.T) {
	perlin := core.NewPerlin(rand.New(rand.NewSource(5)))
	noise := NewNoise(perlin, 4.0)
	marble := NewMarble(perlin, 4.0)

	p := core.Vec3{X: 1.5, Y: -2.5, Z: 3.5}
	n := noise.Value(0, 0, p)
	m := marble.Value(0, 0, p)

	for _, c := range []core.Colour{n, m} {
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			t.Errorf("texture value %v has a negative component", c)
		}
	}
}
