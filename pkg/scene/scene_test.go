package scene

import (
	"testing"

	"raytracer/pkg/core"
	"raytracer/pkg/geometry"
	"raytracer/pkg/material"
)

func TestSceneHitReturnsNearest(t *testing.T) {
	matte := material.NewMatte(core.NewVec3(0.5, 0.5, 0.5))
	near := geometry.NewSphere(core.NewVec3(1.5, 0, 0), 0.5, matte)
	far := geometry.NewSphere(core.NewVec3(3.5, 0, 0), 0.5, matte)

	// Registration order must not matter, only distance along the ray
	for name, s := range map[string]*Scene{
		"near first": From(near, far),
		"far first":  From(far, near),
	} {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
		hit, ok := s.Hit(ray, core.NewIntervalFrom(0.001))
		if !ok {
			t.Fatalf("%s: ray should hit a sphere", name)
		}
		if hit.Point != core.NewVec3(1, 0, 0) {
			t.Errorf("%s: expected nearest hit at [1 0 0], got %v", name, hit.Point)
		}
	}
}

func TestEmptySceneNeverHits(t *testing.T) {
	s := New()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := s.Hit(ray, core.NewIntervalFrom(0.001)); ok {
		t.Error("empty scene should return no hit")
	}
}

func TestSceneMiss(t *testing.T) {
	s := From(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewAbsorbant()))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if _, ok := s.Hit(ray, core.NewIntervalFrom(0.001)); ok {
		t.Error("ray pointing away from all objects should miss")
	}
}

func TestSceneIndexPreservesResults(t *testing.T) {
	matte := material.NewMatte(core.NewVec3(0.5, 0.5, 0.5))
	s := From(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, matte),
		geometry.NewSphere(core.NewVec3(0, 0, -6), 1, matte),
		geometry.NewSphere(core.NewVec3(2, 0, -3), 1, matte),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	tRange := core.NewIntervalFrom(0.001)

	before, beforeOk := s.Hit(ray, tRange)
	s.BuildIndex()
	after, afterOk := s.Hit(ray, tRange)

	if !beforeOk || !afterOk {
		t.Fatal("ray should hit both with and without the index")
	}
	if before.T != after.T || before.Point != after.Point {
		t.Errorf("index changed the result: t %v vs %v", before.T, after.T)
	}
}

func TestAddInvalidatesIndex(t *testing.T) {
	s := From(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewAbsorbant()))
	s.BuildIndex()

	// The new sphere is closer; a stale index would miss it
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewAbsorbant()))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.Hit(ray, core.NewIntervalFrom(0.001))
	if !ok {
		t.Fatal("ray should hit the newly added sphere")
	}
	if hit.T != 1 {
		t.Errorf("expected nearest hit at t = 1, got %v", hit.T)
	}
}
