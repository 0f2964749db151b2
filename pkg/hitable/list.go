package hitable

import "github.com/kjhsato/pathtrace/pkg/core"

// ElementList is a sequence of Hitables searched linearly; its name
// follows the original renderer's element_list naming directly.
type ElementList struct {
	Elements []Hitable
}

// NewElementList creates an ElementList from a set of elements.
func NewElementList(elements ...Hitable) *ElementList {
	return &ElementList{Elements: elements}
}

// Add appends an element to the list.
func (l *ElementList) Add(element Hitable) {
	l.Elements = append(l.Elements, element)
}

// Hit iterates the list, narrowing tMax to the closest hit found so
// far, and returns the nearest intersection.
func (l *ElementList) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, element := range l.Elements {
		if rec, ok := element.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox unions the children's AABBs; returns false if the list
// is empty or any child is unbounded.
func (l *ElementList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Elements) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	first := true
	for _, element := range l.Elements {
		box, ok := element.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			result = box
			first = false
		} else {
			result = result.Union(box)
		}
	}
	return result, true
}
