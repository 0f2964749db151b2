// Package hitable implements ray-scene intersection: the Hitable
// capability interface, its HitRecord value type, the analytic
// primitives (Sphere, MovingSphere), the linear ElementList
// aggregate, and the BvhNode acceleration structure.
package hitable

import (
	"math"

	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/material"
)

// HitRecord describes a ray-surface intersection.
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  material.Material
}

// NewHitRecord builds a HitRecord from the surface's outward normal,
// orienting it against the incident ray and recording FrontFace.
// The invariant Normal·ray.Direction <= 0 always holds afterward.
func NewHitRecord(ray core.Ray, point, outwardNormal core.Vec3, t, u, v float64, mat material.Material) HitRecord {
	frontFace := ray.Direction.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = outwardNormal.Negate()
	}
	return HitRecord{
		Point:     point,
		Normal:    normal,
		T:         t,
		U:         u,
		V:         v,
		FrontFace: frontFace,
		Material:  mat,
	}
}

// Hitable is anything a ray can intersect: spheres, lists, BVH nodes.
type Hitable interface {
	// Hit returns the nearest intersection with tMin < t < tMax, if any.
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)
	// BoundingBox returns the object's AABB over the shutter interval
	// [time0, time1]. The bool is false when there is no finite box:
	// an empty ElementList, or a list holding a child without one.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// sphereUV computes texture coordinates for a point on the unit
// sphere given its outward normal, shared by Sphere and MovingSphere.
func sphereUV(outwardNormal core.Vec3) (u, v float64) {
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	u = phi / (2 * math.Pi)
	v = theta / math.Pi
	return u, v
}
