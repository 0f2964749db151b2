package scene

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/render"
)

// S7 — End-to-end smoke render from spec.md section 8: the basic
// spheres scene at 400x225, 1 sample, depth 1, fixed RNG seed must
// produce a well-formed PPM with the right header and pixel count.
func TestEndToEndSmokeRenderScenarioS7(t *testing.T) {
	const width, height = 400, 225

	built, err := Build(BasicSpheres, Options{
		AspectRatio: float64(width) / float64(height),
		Random:      rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	opts := render.Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		Background:      core.Colour{X: 0.5, Y: 0.7, Z: 1.0},
		Workers:         2,
		Seed:            42,
	}

	rows, stats := render.Render(render.Scene{World: built.World, Camera: built.Camera}, opts, render.NoopLogger{})
	if stats.Width != width || stats.Height != height {
		t.Fatalf("Stats = %+v, want Width=%d Height=%d", stats, width, height)
	}
	if len(rows) != height {
		t.Fatalf("got %d scanlines, want %d", len(rows), height)
	}
	for _, row := range rows {
		if len(row) != width {
			t.Fatalf("scanline has %d pixels, want %d", len(row), width)
		}
	}

	var buf bytes.Buffer
	if err := render.WritePPM(&buf, width, height, rows); err != nil {
		t.Fatalf("WritePPM returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "P3\n400 225\n255\n") {
		t.Fatalf("PPM header = %q, want \"P3\\n400 225\\n255\\n\"", out[:min(len(out), 20)])
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	pixelLines := len(lines) - 3
	if pixelLines != width*height {
		t.Fatalf("got %d pixel lines, want %d", pixelLines, width*height)
	}
}

func TestBuildUnknownPreset(t *testing.T) {
	if _, err := Build(Name("nonexistent"), Options{AspectRatio: 1, Random: rand.New(rand.NewSource(1))}); err == nil {
		t.Error("expected an error for an unknown scene preset")
	}
}

func TestNoiseSpheresBuildsWorldAndCamera(t *testing.T) {
	built, err := Build(NoiseSpheres, Options{AspectRatio: 1, Random: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if built.World == nil || built.Camera == nil {
		t.Fatal("expected a non-nil world and camera")
	}
}
