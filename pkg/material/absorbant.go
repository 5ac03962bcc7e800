package material

import (
	"math/rand"

	"raytracer/pkg/core"
)

// Absorbant is a material that absorbs all incoming light
type Absorbant struct{}

// NewAbsorbant creates a new absorbant material
func NewAbsorbant() *Absorbant {
	return &Absorbant{}
}

// Scatter implements the Material interface; the ray is always absorbed
func (a *Absorbant) Scatter(rayIn core.Ray, hit Hit, random *rand.Rand) (core.Ray, bool) {
	return core.Ray{}, false
}
