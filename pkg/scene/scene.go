// Package scene builds the four preset scenes named in spec.md
// section 6 — basic spheres, noise spheres, textured globe, lit
// globe — each grounded directly on
// _examples/original_source/src/scenes.rs's builder functions of the
// same shape.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/kjhsato/pathtrace/pkg/camera"
	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/hitable"
	"github.com/kjhsato/pathtrace/pkg/material"
	"github.com/kjhsato/pathtrace/pkg/texture"
)

// Scene bundles a prebuilt world and its camera, ready to hand to
// the render package.
type Scene struct {
	World  hitable.Hitable
	Camera *camera.Camera
}

// Name identifies one of the four presets.
type Name string

const (
	BasicSpheres Name = "basic"
	NoiseSpheres Name = "noise"
	Globe        Name = "globe"
	LitGlobe     Name = "lit-globe"
)

// Options configures scene construction; AspectRatio and EarthTexturePath
// are only consulted by the scenes that need them.
type Options struct {
	AspectRatio      float64
	EarthTexturePath string
	Random           *rand.Rand
}

// Build constructs the named preset scene, or an error if name does
// not match one of the four presets.
func Build(name Name, opts Options) (Scene, error) {
	switch name {
	case BasicSpheres:
		return buildBasicSpheres(opts), nil
	case NoiseSpheres:
		return buildNoiseSpheres(opts), nil
	case Globe:
		return buildGlobe(opts)
	case LitGlobe:
		return buildLitGlobe(opts)
	default:
		return Scene{}, fmt.Errorf("unknown scene preset %q", name)
	}
}

func defaultCamera(lookFrom, lookAt core.Vec3, vfov, aspectRatio, aperture, focusDistance float64) *camera.Camera {
	return camera.New(camera.Config{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		VUp:           core.Vec3{X: 0, Y: 1, Z: 0},
		VFovDegrees:   vfov,
		AspectRatio:   aspectRatio,
		Aperture:      aperture,
		FocusDistance: focusDistance,
		Time0:         0,
		Time1:         1,
	})
}

// buildBasicSpheres is grounded on create_basic_spheres(): a
// checkered-Lambertian moving sphere flanked by a dielectric (glass)
// sphere and a metal sphere, over a large Lambertian ground sphere,
// assembled into a BVH.
func buildBasicSpheres(opts Options) Scene {
	groundMat := material.NewLambertianColour(core.Colour{X: 0.8, Y: 0.8, Z: 0.0})
	centreChecker := texture.NewCheckerTextures(
		texture.NewSolidColour(core.Colour{X: 0.1, Y: 0.1, Z: 0.1}),
		texture.NewSolidColour(core.Colour{X: 0.7, Y: 0.7, Z: 0.7}),
	)
	centreMat := material.NewLambertian(centreChecker)
	leftMat := material.NewDielectric(1.5)
	rightMat := material.NewMetal(core.Colour{X: 0.8, Y: 0.6, Z: 0.2}, 0.0)

	elements := []hitable.Hitable{
		hitable.NewSphere(core.Vec3{X: 0, Y: -100.5, Z: -1}, 100, groundMat),
		hitable.NewMovingSphere(
			core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec3{X: 0, Y: 0.2, Z: -1},
			0, 1, 0.5, centreMat,
		),
		hitable.NewSphere(core.Vec3{X: -1, Y: 0, Z: -1}, 0.5, leftMat),
		hitable.NewSphere(core.Vec3{X: 1, Y: 0, Z: -1}, 0.5, rightMat),
	}

	world := hitable.NewBVH(elements, 0, 1, opts.Random)

	cam := defaultCamera(
		core.Vec3{X: -2, Y: 2, Z: 1}, core.Vec3{X: 0, Y: 0, Z: -1},
		40, opts.AspectRatio, 0.1, 3.4,
	)
	return Scene{World: world, Camera: cam}
}

// buildNoiseSpheres is grounded on create_noise_spheres(): a marble
// ground sphere and a noise sphere sharing one Perlin table, over a
// BVH.
func buildNoiseSpheres(opts Options) Scene {
	perlin := core.NewPerlin(opts.Random)
	noiseMat := material.NewLambertian(texture.NewNoise(perlin, 4.0))
	marbleMat := material.NewLambertian(texture.NewMarble(perlin, 4.0))

	elements := []hitable.Hitable{
		hitable.NewSphere(core.Vec3{X: 0, Y: -1000, Z: 0}, 1000, marbleMat),
		hitable.NewSphere(core.Vec3{X: 0, Y: 2, Z: 0}, 2, noiseMat),
	}

	world := hitable.NewBVH(elements, 0, 1, opts.Random)

	cam := defaultCamera(
		core.Vec3{X: 13, Y: 2, Z: 3}, core.Vec3{X: 0, Y: 0, Z: 0},
		20, opts.AspectRatio, 0, 10,
	)
	return Scene{World: world, Camera: cam}
}

// buildGlobe is grounded on create_globe(): a single sphere
// textured with an equirectangular earth image, via a plain
// ElementList (no BVH needed for one element).
func buildGlobe(opts Options) (Scene, error) {
	earthTexture, err := texture.NewImageTextureFromFile(opts.EarthTexturePath)
	if err != nil {
		return Scene{}, err
	}
	earthMat := material.NewLambertian(earthTexture)

	world := hitable.NewElementList(
		hitable.NewSphere(core.Vec3{X: 0, Y: 0, Z: 0}, 2, earthMat),
	)

	cam := defaultCamera(
		core.Vec3{X: 13, Y: 2, Z: 3}, core.Vec3{X: 0, Y: 0, Z: 0},
		20, opts.AspectRatio, 0, 10,
	)
	return Scene{World: world, Camera: cam}, nil
}

// buildLitGlobe is grounded on create_lit_globe(): the earth sphere
// plus a red ground sphere and a DiffuseLight sphere, via
// ElementList. Background must be rendered black by the caller
// (spec.md 4.9's background parameter) since all illumination here
// comes from the emissive sphere.
func buildLitGlobe(opts Options) (Scene, error) {
	earthTexture, err := texture.NewImageTextureFromFile(opts.EarthTexturePath)
	if err != nil {
		return Scene{}, err
	}
	earthMat := material.NewLambertian(earthTexture)
	groundMat := material.NewLambertianColour(core.Colour{X: 1, Y: 0, Z: 0})
	lightMat := material.NewDiffuseLightColour(core.Colour{X: 4, Y: 4, Z: 4})

	world := hitable.NewElementList(
		hitable.NewSphere(core.Vec3{X: 0, Y: 2, Z: 0}, 2, earthMat),
		hitable.NewSphere(core.Vec3{X: 0, Y: -1000, Z: 0}, 1000, groundMat),
		hitable.NewSphere(core.Vec3{X: 5, Y: 5, Z: 5}, 1, lightMat),
	)

	cam := defaultCamera(
		core.Vec3{X: 13, Y: 3, Z: 5}, core.Vec3{X: 0, Y: 2, Z: 0},
		30, opts.AspectRatio, 0, 10,
	)
	return Scene{World: world, Camera: cam}, nil
}
