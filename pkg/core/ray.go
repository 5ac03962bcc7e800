package core

// Ray represents a ray with an origin, a direction and the color
// attenuation it carries. The direction is not required to be unit length;
// code that needs a unit vector normalizes explicitly.
type Ray struct {
	Origin      Point
	Direction   Vec3
	Attenuation Color
}

// NewRay creates a ray with full transmission (attenuation (1,1,1))
func NewRay(origin Point, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Attenuation: NewVec3(1, 1, 1)}
}

// NewAttenuatedRay creates a ray tinted by the given attenuation color
func NewAttenuatedRay(origin Point, direction Vec3, attenuation Color) Ray {
	return Ray{Origin: origin, Direction: direction, Attenuation: attenuation}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}
