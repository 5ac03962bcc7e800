package scene

import (
	"raytracer/pkg/core"
	"raytracer/pkg/geometry"
	"raytracer/pkg/material"
)

// Scene is an ordered collection of hittable objects. It is append-only
// during construction and read-only during rendering.
type Scene struct {
	objects []geometry.Hittable
	index   *geometry.BVH
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// From creates a scene containing the given objects
func From(objects ...geometry.Hittable) *Scene {
	return &Scene{objects: objects}
}

// Add appends an object to the scene. Any previously built index is
// discarded because it no longer covers all objects.
func (s *Scene) Add(obj geometry.Hittable) {
	s.objects = append(s.objects, obj)
	s.index = nil
}

// ObjectCount returns the number of objects in the scene
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// BuildIndex builds a BVH over the current objects. Purely a performance
// aid: Hit results are identical with or without it.
func (s *Scene) BuildIndex() {
	s.index = geometry.NewBVH(s.objects)
}

// Hit resolves the nearest intersection along the ray within tRange.
// Without an index this is a single linear pass that keeps shrinking the
// search interval's upper bound to the closest hit found so far.
func (s *Scene) Hit(ray core.Ray, tRange core.Interval) (*material.Hit, bool) {
	if s.index != nil {
		return s.index.Hit(ray, tRange)
	}

	var closestHit *material.Hit
	tMax := tRange.End
	for _, obj := range s.objects {
		if hit, ok := obj.Hit(ray, core.NewInterval(tRange.Start, tMax)); ok {
			tMax = hit.T
			closestHit = hit
		}
	}
	return closestHit, closestHit != nil
}
