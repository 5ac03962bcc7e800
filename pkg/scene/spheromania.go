package scene

import (
	"math/rand"

	"raytracer/pkg/core"
	"raytracer/pkg/geometry"
	"raytracer/pkg/material"
	"raytracer/pkg/renderer"
)

// NewSpheromaniaScene creates the demo with three big spheres of different
// materials among a grid of randomly placed and colored small spheres.
// The same seed produces the same arrangement.
func NewSpheromaniaScene(seed int64) (*Scene, renderer.CameraSetup) {
	random := rand.New(rand.NewSource(seed))

	s := New()
	s.Add(geometry.NewSphere(
		core.NewVec3(0, -1000, 0), 1000,
		material.NewMatte(core.NewVec3(0.5, 0.5, 0.5)),
	))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choice := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case choice < 0.7:
				color := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
				mat = material.NewMatte(color)
			case choice < 0.9:
				color := core.RandomVec3(0.5, 1, random)
				mat = material.NewMetal(color, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewMatte(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	// Hundreds of spheres: worth indexing
	s.BuildIndex()

	setup := renderer.DefaultCameraSetup()
	setup.LookFrom = core.NewVec3(13, 2, 3)
	setup.LookAt = core.NewVec3(0, 0, 0)
	setup.VFov = 20.0
	setup.FocusDistance = setup.LookFrom.Subtract(setup.LookAt).Length()

	return s, setup
}
