package hitable

import (
	"math"

	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/material"
)

// Sphere is a stationary sphere with a centre, radius and material.
type Sphere struct {
	Centre   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a Sphere.
func NewSphere(centre core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Centre: centre, Radius: radius, Material: mat}
}

// Hit solves the sphere quadratic |R(t)-C|^2 = r^2, trying the
// smaller root first and falling back to the larger root if it lies
// outside (tMin, tMax).
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	return sphereHit(ray, s.Centre, s.Radius, tMin, tMax, s.Material)
}

func sphereHit(ray core.Ray, centre core.Vec3, radius, tMin, tMax float64, mat material.Material) (HitRecord, bool) {
	oc := ray.Origin.Subtract(centre)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtDisc := math.Sqrt(discriminant)

	root := (-halfB - sqrtDisc) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtDisc) / a
		if root <= tMin || root >= tMax {
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(centre).Multiply(1 / radius)
	u, v := sphereUV(outwardNormal)
	return NewHitRecord(ray, point, outwardNormal, root, u, v, mat), true
}

// BoundingBox returns the sphere's static AABB.
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radiusVec := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return core.NewAABB(s.Centre.Subtract(radiusVec), s.Centre.Add(radiusVec)), true
}

// MovingSphere linearly interpolates its centre between Centre0 at
// Time0 and Centre1 at Time1, used for motion blur.
type MovingSphere struct {
	Centre0, Centre1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a MovingSphere.
func NewMovingSphere(centre0, centre1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Centre0: centre0, Centre1: centre1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// CentreAt returns the sphere's centre at the given ray time.
func (m *MovingSphere) CentreAt(time float64) core.Vec3 {
	fraction := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Centre0.Add(m.Centre1.Subtract(m.Centre0).Multiply(fraction))
}

// Hit intersects with the sphere's position at the ray's own time.
// UVs are computed from the outward normal via sphereUV, matching
// static Sphere (see SPEC_FULL.md Open Question 2).
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	return sphereHit(ray, m.CentreAt(ray.Time), m.Radius, tMin, tMax, m.Material)
}

// BoundingBox unions the sphere's AABB at time0 and time1.
func (m *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radiusVec := core.Vec3{X: m.Radius, Y: m.Radius, Z: m.Radius}
	centre0 := m.CentreAt(time0)
	centre1 := m.CentreAt(time1)
	box0 := core.NewAABB(centre0.Subtract(radiusVec), centre0.Add(radiusVec))
	box1 := core.NewAABB(centre1.Subtract(radiusVec), centre1.Add(radiusVec))
	return box0.Union(box1), true
}
