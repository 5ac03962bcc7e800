package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"raytracer/pkg/core"
	"raytracer/pkg/geometry"
	"raytracer/pkg/material"
	"raytracer/pkg/renderer"
)

// JSON scene descriptor. Vectors are [x,y,z] arrays, materials are tagged
// objects:
//
//	{
//	  "camera": {
//	    "fov": 27.0,
//	    "source": [0, 0, -1],
//	    "target": [0, 0, 0],
//	    "aperture": 0.0,
//	    "focusDistance": 1.0
//	  },
//	  "scene": [
//	    {
//	      "type": "sphere",
//	      "center": [0, 0, 0],
//	      "radius": 1.5,
//	      "material": {"type": "metal", "color": [0.5, 0.2, 0.1], "fuzz": 0.5}
//	    }
//	  ]
//	}
type inputFile struct {
	Camera cameraInput   `json:"camera"`
	Scene  []objectInput `json:"scene"`
}

type cameraInput struct {
	Fov           float64    `json:"fov"`
	Source        [3]float64 `json:"source"`
	Target        [3]float64 `json:"target"`
	Aperture      float64    `json:"aperture"`
	FocusDistance float64    `json:"focusDistance"`
}

type objectInput struct {
	Type     string        `json:"type"`
	Center   [3]float64    `json:"center"`
	Radius   float64       `json:"radius"`
	Material materialInput `json:"material"`
}

type materialInput struct {
	Type  string      `json:"type"`
	Color *[3]float64 `json:"color"`
	Fuzz  *float64    `json:"fuzz"`
	Ridx  *float64    `json:"ridx"`
}

// Load reads a JSON scene descriptor and builds the scene and camera
// setup. Image dimensions are not part of the descriptor and are taken
// from the caller. Malformed descriptors are rejected here; no core value
// is constructed from bad input.
func Load(r io.Reader, width, height int) (*Scene, renderer.CameraSetup, error) {
	var input inputFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return nil, renderer.CameraSetup{}, fmt.Errorf("parse scene descriptor: %w", err)
	}

	s := New()
	for i, obj := range input.Scene {
		if obj.Type != "sphere" {
			return nil, renderer.CameraSetup{}, fmt.Errorf("scene object %d: unknown type %q", i, obj.Type)
		}
		mat, err := obj.Material.build()
		if err != nil {
			return nil, renderer.CameraSetup{}, fmt.Errorf("scene object %d: %w", i, err)
		}
		s.Add(geometry.NewSphere(toVec3(obj.Center), obj.Radius, mat))
	}

	setup := renderer.DefaultCameraSetup()
	setup.Width = width
	setup.Height = height
	setup.VFov = input.Camera.Fov
	setup.LookFrom = toVec3(input.Camera.Source)
	setup.LookAt = toVec3(input.Camera.Target)
	setup.DefocusAngle = input.Camera.Aperture
	setup.FocusDistance = input.Camera.FocusDistance
	if setup.FocusDistance == 0 {
		setup.FocusDistance = setup.LookFrom.Subtract(setup.LookAt).Length()
	}

	if err := setup.Validate(); err != nil {
		return nil, renderer.CameraSetup{}, fmt.Errorf("scene descriptor camera: %w", err)
	}
	return s, setup, nil
}

// LoadFile is Load on a descriptor file path
func LoadFile(path string, width, height int) (*Scene, renderer.CameraSetup, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, renderer.CameraSetup{}, fmt.Errorf("open scene descriptor: %w", err)
	}
	defer file.Close()
	return Load(file, width, height)
}

func (m materialInput) build() (material.Material, error) {
	switch m.Type {
	case "absorbant":
		return material.NewAbsorbant(), nil
	case "matte":
		if m.Color == nil {
			return nil, fmt.Errorf("matte material requires a color")
		}
		return material.NewMatte(toVec3(*m.Color)), nil
	case "metal":
		if m.Color == nil {
			return nil, fmt.Errorf("metal material requires a color")
		}
		fuzz := 0.0
		if m.Fuzz != nil {
			fuzz = *m.Fuzz
		}
		return material.NewMetal(toVec3(*m.Color), fuzz), nil
	case "dielectric":
		if m.Ridx == nil {
			return nil, fmt.Errorf("dielectric material requires a refractive index (ridx)")
		}
		return material.NewDielectric(*m.Ridx), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func toVec3(coords [3]float64) core.Vec3 {
	return core.NewVec3(coords[0], coords[1], coords[2])
}
