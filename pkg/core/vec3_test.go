package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected [5 7 9], got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected [3 3 3], got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected [2 4 6], got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected [4 10 18], got %v", got)
	}
	if got := b.DivideVec(a); got != NewVec3(4, 2.5, 2) {
		t.Errorf("DivideVec: expected [4 2.5 2], got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: expected [-1 -2 -3], got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("x cross y should be z, got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("y cross x should be -z, got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("normalized vector should have length 1, got %v", v.Length())
	}

	// The zero vector is not guarded: NaN is the documented result
	zero := Vec3{}.Normalize()
	if !math.IsNaN(zero.X) || !math.IsNaN(zero.Y) || !math.IsNaN(zero.Z) {
		t.Errorf("normalizing zero vector should yield NaN components, got %v", zero)
	}
}

func TestVec3Pow(t *testing.T) {
	v := NewVec3(4, 9, 16).Pow(0.5)
	want := NewVec3(2, 3, 4)
	if v.Subtract(want).Length() > 1e-12 {
		t.Errorf("Pow(0.5): expected %v, got %v", want, v)
	}
}

func TestVec3NearZero(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"zero vector", Vec3{}, true},
		{"just below epsilon", NewVec3(1e-9, -1e-9, 1e-9), true},
		{"one large component", NewVec3(1e-9, 1e-9, 1e-3), false},
		{"unit vector", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.want {
				t.Errorf("NearZero(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Vec3
		wantErr bool
	}{
		{"comma separated", "1,2,3", NewVec3(1, 2, 3), false},
		{"space separated", "1 2 3", NewVec3(1, 2, 3), false},
		{"semicolons", "1;2;3", NewVec3(1, 2, 3), false},
		{"square brackets", "[1 2 3]", NewVec3(1, 2, 3), false},
		{"parentheses", "(1.5,-2,0.25)", NewVec3(1.5, -2, 0.25), false},
		{"surrounding space", "  13,2,3 ", NewVec3(13, 2, 3), false},
		{"too few coordinates", "1,2", Vec3{}, true},
		{"too many coordinates", "1,2,3,4", Vec3{}, true},
		{"not a number", "1,two,3", Vec3{}, true},
		{"empty", "", Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVec3(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVec3(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVec3(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRandomUnitVectorHasUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("random unit vector %v has length %v", v, v.Length())
		}
	}
}

func TestRandomInUnitDiskStaysInside(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := RandomInUnitDisk(random)
		if v.Length() >= 1.0 {
			t.Fatalf("random disk point %v has length %v >= 1", v, v.Length())
		}
		if v.Z != 0 {
			t.Fatalf("random disk point %v should have z = 0", v)
		}
	}
}

func TestRandomVec3StaysInRange(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomVec3(-2, 3, random)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("component %v outside [-2, 3)", c)
			}
		}
	}
}
