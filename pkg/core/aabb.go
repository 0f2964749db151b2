package core

import (
	"fmt"
	"math"
)

// AABB is an axis-aligned bounding box used by the BVH to prune ray
// intersection tests.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates an AABB from its min and max corners. It panics if
// min exceeds max on any axis, since that is a programming error.
func NewAABB(min, max Vec3) AABB {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		panic(fmt.Sprintf("core.NewAABB: min %v exceeds max %v", min, max))
	}
	return AABB{Min: min, Max: max}
}

// Hit tests whether a ray intersects the box within [tMin, tMax]
// using the slab method: each axis narrows the valid t interval, and
// the box is hit only if the interval survives all three axes.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin, direction, lo, hi := axisComponents(axis, ray, b)

		invD := 1.0 / direction
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func axisComponents(axis int, ray Ray, b AABB) (origin, direction, lo, hi float64) {
	switch axis {
	case 0:
		return ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X
	case 1:
		return ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y
	default:
		return ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z
	}
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Component returns the box's min coordinate along the given axis
// (0=X, 1=Y, 2=Z), used by the BVH build to compare boxes along a
// randomly chosen axis.
func (b AABB) Component(axis int) float64 {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}
