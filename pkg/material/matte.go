package material

import (
	"math/rand"

	"raytracer/pkg/core"
)

// Matte is a diffuse material with Lambertian reflectance
type Matte struct {
	Albedo core.Color // Base color, carried as the scattered ray's attenuation
}

// NewMatte creates a new matte material
func NewMatte(albedo core.Color) *Matte {
	return &Matte{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering
func (m *Matte) Scatter(rayIn core.Ray, hit Hit, random *rand.Rand) (core.Ray, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	// The random vector can cancel the normal almost exactly; fall back to
	// the normal itself to avoid a degenerate zero-direction ray.
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.NewAttenuatedRay(hit.Point, direction, m.Albedo), true
}
