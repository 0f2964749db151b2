package hitable

import (
	"math/rand"
	"sort"

	"github.com/kjhsato/pathtrace/pkg/core"
)

// BvhNode is an internal node of a bounding volume hierarchy binary
// tree. Each node picks one axis, uniformly at random, at build time
// and orders its two children by their AABB's minimum coordinate on
// that axis; the tree shape is therefore non-deterministic across
// builds unless the build RNG is seeded (see SPEC_FULL.md Open
// Question 3).
type BvhNode struct {
	Left, Right Hitable
	Box         core.AABB
}

// NewBVH builds a BvhNode over elements for the shutter interval
// [time0, time1], using random to pick each node's split axis.
//
// Build rule, by span of the (sub-)slice being partitioned:
//   - span 1: both children point at the single element (a
//     leaf-duplication convention that keeps every internal node
//     binary).
//   - span 2: order the pair by the chosen axis and assign left/right.
//   - span > 2: sort the sub-range by the chosen axis and split at
//     the midpoint, recursing on each half.
func NewBVH(elements []Hitable, time0, time1 float64, random *rand.Rand) *BvhNode {
	return buildBVH(append([]Hitable(nil), elements...), time0, time1, random)
}

func buildBVH(elements []Hitable, time0, time1 float64, random *rand.Rand) *BvhNode {
	axis := random.Intn(3)
	comparator := func(a, b Hitable) bool {
		boxA, _ := a.BoundingBox(time0, time1)
		boxB, _ := b.BoundingBox(time0, time1)
		return boxA.Component(axis) < boxB.Component(axis)
	}

	node := &BvhNode{}

	switch len(elements) {
	case 1:
		node.Left = elements[0]
		node.Right = elements[0]
	case 2:
		if comparator(elements[0], elements[1]) {
			node.Left, node.Right = elements[0], elements[1]
		} else {
			node.Left, node.Right = elements[1], elements[0]
		}
	default:
		sort.Slice(elements, func(i, j int) bool {
			return comparator(elements[i], elements[j])
		})
		mid := len(elements) / 2
		node.Left = buildBVH(elements[:mid], time0, time1, random)
		node.Right = buildBVH(elements[mid:], time0, time1, random)
	}

	leftBox, _ := node.Left.BoundingBox(time0, time1)
	rightBox, _ := node.Right.BoundingBox(time0, time1)
	node.Box = leftBox.Union(rightBox)

	return node
}

// Hit tests the node's own AABB first; on a miss it returns false
// immediately. Otherwise it hits the left subtree with [tMin, tMax],
// then tightens tMax to the left hit's t (if any) before hitting the
// right subtree, and returns the right hit if present, else the left.
// This yields the nearest hit without requiring spatial ordering
// between the two children.
func (n *BvhNode) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(ray, tMin, tMax)

	tMaxRight := tMax
	if hitLeft {
		tMaxRight = leftRec.T
	}
	rightRec, hitRight := n.Right.Hit(ray, tMin, tMaxRight)

	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return HitRecord{}, false
}

// BoundingBox returns the node's cached bounding box; time0 and
// time1 are ignored since the box was already computed over the
// build's shutter interval.
func (n *BvhNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}
