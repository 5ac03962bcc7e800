package material

import (
	"math"
	"math/rand"
	"testing"

	"raytracer/pkg/core"
)

func TestDielectricCarriesNoTint(t *testing.T) {
	mat := NewDielectric(1.5)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := Hit{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	random := rand.New(rand.NewSource(42))

	scattered, ok := mat.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("dielectric should always scatter")
	}
	if scattered.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("dielectric attenuation should be full transmission, got %v", scattered.Attenuation)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	// Exiting glass at a shallow angle: ri*sinθ > 1, refraction is
	// impossible and the ray must reflect regardless of the random draw
	mat := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	incoming := core.NewVec3(1, -0.25, 0).Normalize()
	hit := Hit{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false, // hitting from inside
	}
	rayIn := core.NewRay(core.NewVec3(-1, 0.25, 0), incoming)

	expected := reflect(incoming, hit.Normal)
	for i := 0; i < 50; i++ {
		scattered, ok := mat.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("dielectric should always scatter")
		}
		if scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("expected total internal reflection %v, got %v", expected, scattered.Direction)
		}
	}
}

func TestRefractDoesNotReverseDirection(t *testing.T) {
	tests := []struct {
		name     string
		incoming core.Vec3
		ratio    float64
	}{
		{"entering glass at an angle", core.NewVec3(1, -2, 0), 1.0 / 1.5},
		{"entering water steeply", core.NewVec3(0.2, -1, 0.1), 1.0 / 1.33},
		{"exiting glass near normal incidence", core.NewVec3(0.1, -1, 0), 1.5},
	}

	normal := core.NewVec3(0, 1, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incoming := tt.incoming.Normalize()
			refracted := refract(incoming, normal, tt.ratio)
			if refracted.Dot(incoming) < 0 {
				t.Errorf("refracted direction %v reverses incoming %v", refracted, incoming)
			}
		})
	}
}

func TestReflectanceAtNormalIncidence(t *testing.T) {
	// At cosθ = 1 Schlick's approximation collapses to r0
	ratio := 1.0 / 1.5
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0

	if got := Reflectance(1, ratio); math.Abs(got-r0) > 1e-12 {
		t.Errorf("expected r0 %v at normal incidence, got %v", r0, got)
	}

	// Reflectance grows towards grazing incidence
	if Reflectance(0.1, ratio) <= Reflectance(0.9, ratio) {
		t.Error("reflectance should increase as cosine decreases")
	}
}
