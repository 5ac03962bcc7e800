package material

import (
	"math/rand"
	"testing"

	"raytracer/pkg/core"
)

func TestSetFaceNormal(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	tests := []struct {
		name          string
		outwardNormal core.Vec3
		wantFrontFace bool
		wantNormal    core.Vec3
	}{
		{
			name:          "ray opposes outward normal, front face, normal unchanged",
			outwardNormal: core.NewVec3(-1, 0, 0),
			wantFrontFace: true,
			wantNormal:    core.NewVec3(-1, 0, 0),
		},
		{
			name:          "ray along outward normal, back face, normal negated",
			outwardNormal: core.NewVec3(1, 0, 0),
			wantFrontFace: false,
			wantNormal:    core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit Hit
			hit.SetFaceNormal(ray, tt.outwardNormal)
			if hit.FrontFace != tt.wantFrontFace {
				t.Errorf("FrontFace = %v, want %v", hit.FrontFace, tt.wantFrontFace)
			}
			if hit.Normal != tt.wantNormal {
				t.Errorf("Normal = %v, want %v", hit.Normal, tt.wantNormal)
			}
		})
	}
}

func TestScatteredRaysOriginateAtHitPoint(t *testing.T) {
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := Hit{
		T:         5,
		Point:     core.NewVec3(5, 0, 0),
		Normal:    core.NewVec3(-1, 0, 0),
		FrontFace: true,
	}
	random := rand.New(rand.NewSource(42))

	materials := []struct {
		name string
		mat  Material
	}{
		{"absorbant", NewAbsorbant()},
		{"matte", NewMatte(core.NewVec3(0.5, 0.5, 0.5))},
		{"metal", NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0)},
		{"dielectric", NewDielectric(1.5)},
	}

	for _, tt := range materials {
		t.Run(tt.name, func(t *testing.T) {
			scattered, ok := tt.mat.Scatter(rayIn, hit, random)
			if !ok {
				return // absorbed, nothing to check
			}
			if scattered.Origin != hit.Point {
				t.Errorf("scattered ray should originate at %v, got %v", hit.Point, scattered.Origin)
			}
		})
	}
}

func TestAbsorbantAlwaysAbsorbs(t *testing.T) {
	mat := NewAbsorbant()
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := Hit{Point: core.NewVec3(0, 0, -1), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	random := rand.New(rand.NewSource(1))

	if _, ok := mat.Scatter(rayIn, hit, random); ok {
		t.Error("absorbant material should never scatter")
	}
}
