// Package material implements the shading models: Lambertian, Metal,
// Dielectric and DiffuseLight, each composed with a texture.Texture
// for spatially-varying colour.
package material

import (
	"math"
	"math/rand"

	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/texture"
)

// HitInfo carries the subset of a hitable.HitRecord a material needs
// to scatter or emit. It is defined here rather than imported from
// hitable to avoid a dependency cycle (hitable needs Material on
// HitRecord).
type HitInfo struct {
	Point     core.Vec3
	Normal    core.Vec3
	U, V      float64
	FrontFace bool
}

// Material decides how light scatters off (or is emitted from) a
// surface. Scatter returns the attenuation and outgoing ray for a
// surface that reflects/refracts light; ok is false for materials
// that only emit (DiffuseLight) or otherwise absorb.
type Material interface {
	Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (attenuation core.Colour, scattered core.Ray, ok bool)
	// Emit returns the radiance a material emits at (u,v,p); black
	// for every material except DiffuseLight.
	Emit(u, v float64, p core.Vec3) core.Colour
}

// nonEmitting is embedded by materials that never emit light, so
// they only need to implement Scatter.
type nonEmitting struct{}

func (nonEmitting) Emit(u, v float64, p core.Vec3) core.Colour {
	return core.Colour{}
}

// Lambertian is an ideal diffuse reflector, approximated by random
// hemispheric scattering.
type Lambertian struct {
	nonEmitting
	Albedo texture.Texture
}

// NewLambertian creates a Lambertian material from a texture.
func NewLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianColour creates a Lambertian material from a flat colour.
func NewLambertianColour(colour core.Colour) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColour(colour)}
}

// Scatter produces a ray in direction normal + a random point inside
// the unit sphere, substituting the surface normal if that sum is degenerate.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (core.Colour, core.Ray, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(random))
	if direction.NearZero() {
		direction = hit.Normal
	}
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	attenuation := l.Albedo.Value(hit.U, hit.V, hit.Point)
	return attenuation, scattered, true
}

// Metal is a reflective surface perturbed by a fuzz radius.
type Metal struct {
	nonEmitting
	Albedo core.Colour
	Fuzz   float64
}

// NewMetal creates a Metal material; fuzz is clamped to [0,1].
func NewMetal(albedo core.Colour, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incident ray about the normal and perturbs it
// by Fuzz; scatter fails (is absorbed) if the perturbed ray points
// into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (core.Colour, core.Ray, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	if direction.Dot(hit.Normal) <= 0 {
		return core.Colour{}, core.Ray{}, false
	}
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	return m.Albedo, scattered, true
}

// Dielectric is a transparent material refracting/reflecting light
// per Snell's law and the Schlick reflectance approximation.
type Dielectric struct {
	nonEmitting
	IndexOfRefraction float64
}

// NewDielectric creates a Dielectric material with the given index of refraction.
func NewDielectric(indexOfRefraction float64) *Dielectric {
	return &Dielectric{IndexOfRefraction: indexOfRefraction}
}

// Scatter reflects or refracts the incident ray depending on total
// internal reflection and a Schlick-weighted coin flip.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (core.Colour, core.Ray, bool) {
	refractionRatio := d.IndexOfRefraction
	if hit.FrontFace {
		refractionRatio = 1.0 / d.IndexOfRefraction
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlick(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio, cosTheta)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	return core.Colour{X: 1, Y: 1, Z: 1}, scattered, true
}

// schlick is the Schlick approximation for Fresnel reflectance.
func schlick(cosTheta, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// DiffuseLight emits a texture's colour and never scatters.
type DiffuseLight struct {
	Emission texture.Texture
}

// NewDiffuseLight creates a DiffuseLight material from a texture.
func NewDiffuseLight(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// NewDiffuseLightColour creates a DiffuseLight material from a flat colour.
func NewDiffuseLightColour(colour core.Colour) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColour(colour)}
}

// Scatter always fails: diffuse lights only emit.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (core.Colour, core.Ray, bool) {
	return core.Colour{}, core.Ray{}, false
}

// Emit returns the emission texture's value at the hit point.
func (d *DiffuseLight) Emit(u, v float64, p core.Vec3) core.Colour {
	return d.Emission.Value(u, v, p)
}
