package scene

import (
	"raytracer/pkg/core"
	"raytracer/pkg/geometry"
	"raytracer/pkg/material"
	"raytracer/pkg/renderer"
)

// NewGithubScene creates the banner scene: a central glass sphere flanked
// by matte and metal spheres over a large gray ground sphere.
func NewGithubScene() (*Scene, renderer.CameraSetup) {
	bottom := geometry.NewSphere(
		core.NewVec3(0, -99.5, -19), 100,
		material.NewMatte(core.NewVec3(0.5, 0.5, 0.5)),
	)
	glass := geometry.NewSphere(
		core.NewVec3(0, 0, 0), 1,
		material.NewDielectric(1.5),
	)
	backLeft := geometry.NewSphere(
		core.NewVec3(-1.01, 0.12, -2.3), 1,
		material.NewMatte(core.NewVec3(0.24, 0.16, 0.37)),
	)
	backRight := geometry.NewSphere(
		core.NewVec3(1.01, 0.12, -2.3), 1,
		material.NewMetal(core.NewVec3(0.16, 0.37, 0.3), 0),
	)
	frontLeft := geometry.NewSphere(
		core.NewVec3(-1.6, -0.8, 0.3), 0.6,
		material.NewMetal(core.NewVec3(0.37, 0.32, 0.16), 0),
	)
	frontRight := geometry.NewSphere(
		core.NewVec3(1.6, -0.8, 0.3), 0.6,
		material.NewMetal(core.NewVec3(0.16, 0.16, 0.37), 0.95),
	)
	front := geometry.NewSphere(
		core.NewVec3(0, -1.05, 1.6), 0.6,
		material.NewMatte(core.NewVec3(0.42, 0.19, 0.19)),
	)

	setup := renderer.DefaultCameraSetup()
	setup.VFov = 27.0
	setup.LookFrom = core.NewVec3(0, 0.35, 10)
	setup.LookAt = core.NewVec3(0, -0.35, 0)

	return From(bottom, glass, backLeft, backRight, frontLeft, frontRight, front), setup
}
