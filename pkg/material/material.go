package material

import (
	"math/rand"

	"raytracer/pkg/core"
)

// Material describes how a ray scatters off a hit surface. Scatter returns
// the continuation ray, or false if the ray was fully absorbed. The
// material set is closed: Absorbant, Matte, Metal and Dielectric.
type Material interface {
	Scatter(rayIn core.Ray, hit Hit, random *rand.Rand) (core.Ray, bool)
}

// Hit contains information about a ray-object intersection
type Hit struct {
	T         float64    // Parameter t along the ray
	Point     core.Point // Point of intersection
	Normal    core.Vec3  // Unit surface normal, always opposing the ray
	FrontFace bool       // Whether the ray hit the front (outside) face
	Material  Material   // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be a unit vector pointing away from the surface; the
// stored normal opposes the incoming ray.
func (h *Hit) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
