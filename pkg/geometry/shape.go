package geometry

import (
	"raytracer/pkg/core"
	"raytracer/pkg/material"
)

// Hittable is an object that can be intersected by rays. Hit returns the
// intersection whose parameter t lies strictly inside tRange, or false if
// there is none.
type Hittable interface {
	Hit(ray core.Ray, tRange core.Interval) (*material.Hit, bool)
	BoundingBox() core.AABB
}
