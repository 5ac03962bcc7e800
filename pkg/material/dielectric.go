package material

import (
	"math"
	"math/rand"

	"raytracer/pkg/core"
)

// Dielectric is a transparent material, like glass, that both reflects
// and refracts
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass, 2.4 for diamond
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// The ray reflects when refraction is geometrically impossible (total
// internal reflection) or when a uniform draw falls below the Schlick
// reflectance; otherwise it refracts. Dielectric rays carry no tint.
func (d *Dielectric) Scatter(rayIn core.Ray, hit Hit, random *rand.Rand) (core.Ray, bool) {
	// Relative refractive index ratio, depending on whether we enter or
	// exit the material
	var ri float64
	if hit.FrontFace {
		ri = 1.0 / d.RefractiveIndex
	} else {
		ri = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, ri) > random.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, ri)
	}

	return core.NewRay(hit.Point, direction), true
}

// refract calculates the refraction direction using Snell's law via the
// perpendicular/parallel decomposition. uv must be a unit vector.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's
// approximation: r0 + (1-r0)*(1-cos)^5 with r0 = ((1-ri)/(1+ri))^2
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
