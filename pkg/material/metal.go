package material

import (
	"math/rand"

	"raytracer/pkg/core"
)

// Metal is a reflective material with specular reflection
type Metal struct {
	Albedo core.Color // Metal color
	Fuzz   float64    // 0.0 = perfect mirror, 1.0 = very rough
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metallic reflection.
// A fuzzed direction that dips below the surface is absorbed, which
// simulates self-shadowing at high roughness.
func (m *Metal) Scatter(rayIn core.Ray, hit Hit, random *rand.Rand) (core.Ray, bool) {
	direction := reflect(rayIn.Direction, hit.Normal)
	if m.Fuzz > 0 {
		direction = direction.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	if direction.Dot(hit.Normal) <= 0 {
		return core.Ray{}, false
	}
	return core.NewAttenuatedRay(hit.Point, direction, m.Albedo), true
}

// reflect calculates the reflection of vector v off a surface with normal n:
// r = v - 2*dot(v,n)*n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
