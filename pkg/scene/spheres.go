package scene

import (
	"raytracer/pkg/core"
	"raytracer/pkg/geometry"
	"raytracer/pkg/material"
	"raytracer/pkg/renderer"
)

// NewSpheresScene creates the demo with a hollow glass sphere, a matte
// sphere and a metal sphere next to each other above a large matte ground
// sphere.
func NewSpheresScene() (*Scene, renderer.CameraSetup) {
	ground := geometry.NewSphere(
		core.NewVec3(0, -100.5, -1), 100,
		material.NewMatte(core.NewVec3(0.8, 0.8, 0)),
	)
	center := geometry.NewSphere(
		core.NewVec3(0, 0, -1.2), 0.5,
		material.NewMatte(core.NewVec3(0, 0.2, 0.1)),
	)
	left := geometry.NewSphere(
		core.NewVec3(-1, 0, -1), 0.5,
		material.NewDielectric(1.5),
	)
	// Air bubble inside the left sphere makes it hollow
	leftAir := geometry.NewSphere(
		core.NewVec3(-1, 0, -1), 0.4,
		material.NewDielectric(1.0/1.5),
	)
	right := geometry.NewSphere(
		core.NewVec3(1, 0, -1), 0.5,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0),
	)

	setup := renderer.DefaultCameraSetup()
	setup.VFov = 90.0

	return From(ground, center, left, leftAir, right), setup
}
