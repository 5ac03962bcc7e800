package geometry

import (
	"math"

	"raytracer/pkg/core"
	"raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. A negative radius clamps to 0.
func NewSphere(center core.Point, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Max(0, radius),
		Material: mat,
	}
}

// Hit tests if a ray intersects the sphere.
//
// Solves a*t² - 2h*t + c = 0 in the half-discriminant form
// t = (h ∓ √(h²-ac)) / a. The smaller root is preferred when it lies
// strictly inside tRange, the larger root is the fallback. The strict
// boundary test must not be loosened: tie-breaking at shared boundaries
// changes rendered images.
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*material.Hit, bool) {
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (h - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (h + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.Hit{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
