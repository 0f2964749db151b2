// Package integrator implements the recursive path-tracing kernel:
// ray_colour and the per-pixel sample loop.
package integrator

import (
	"math"
	"math/rand"

	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/hitable"
	"github.com/kjhsato/pathtrace/pkg/material"
)

// shadowBias is the minimum hit distance accepted to avoid
// self-intersection artefacts from floating point error.
const shadowBias = 0.001

// RayColour recursively traces a ray through world, returning the
// accumulated radiance. It returns black once depth reaches zero,
// background when the ray misses everything, and otherwise combines
// the hit material's emission with its scattered contribution.
func RayColour(ray core.Ray, background core.Colour, world hitable.Hitable, depth int, random *rand.Rand) core.Colour {
	if depth <= 0 {
		return core.Colour{}
	}

	rec, hit := world.Hit(ray, shadowBias, math.Inf(1))
	if !hit {
		return background
	}

	emitted := rec.Material.Emit(rec.U, rec.V, rec.Point)

	hitInfo := material.HitInfo{
		Point:     rec.Point,
		Normal:    rec.Normal,
		U:         rec.U,
		V:         rec.V,
		FrontFace: rec.FrontFace,
	}

	attenuation, scattered, ok := rec.Material.Scatter(ray, hitInfo, random)
	if !ok {
		return emitted
	}

	incoming := RayColour(scattered, background, world, depth-1, random)
	return emitted.Add(attenuation.MultiplyVec(incoming))
}

// Config bundles the per-render sampling parameters.
type Config struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Background      core.Colour
}

// PrimaryRayFunc generates a primary ray for viewport coordinates
// (s,t) drawn from random; satisfied by *camera.Camera.GetRay.
type PrimaryRayFunc func(s, t float64, random *rand.Rand) core.Ray

// PixelColour accumulates SamplesPerPixel jittered samples for pixel
// (i,j) — with j measured from the bottom of the image, so j =
// Height-1 is the top row — and returns
// the averaged, gamma-corrected (gamma 2.0) linear colour clamped to
// [0, 0.999], ready for 8-bit quantisation.
func PixelColour(i, j int, cfg Config, getRay PrimaryRayFunc, world hitable.Hitable, random *rand.Rand) core.Colour {
	var sum core.Colour
	for s := 0; s < cfg.SamplesPerPixel; s++ {
		u := (float64(i) + random.Float64()) / float64(cfg.Width-1)
		v := (float64(j) + random.Float64()) / float64(cfg.Height-1)
		ray := getRay(u, v, random)
		sum = sum.Add(RayColour(ray, cfg.Background, world, cfg.MaxDepth, random))
	}

	averaged := sum.Multiply(1.0 / float64(cfg.SamplesPerPixel))
	gammaCorrected := core.Colour{
		X: sqrtClamp(averaged.X),
		Y: sqrtClamp(averaged.Y),
		Z: sqrtClamp(averaged.Z),
	}
	return gammaCorrected
}

// sqrtClamp applies gamma-2.0 correction (square root) and clamps
// the result to [0, 0.999] so the 8-bit quantisation step never
// rounds up to 256.
func sqrtClamp(x float64) float64 {
	if x < 0 {
		x = 0
	}
	x = math.Sqrt(x)
	if x > 0.999 {
		return 0.999
	}
	return x
}
