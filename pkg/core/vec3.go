package core

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// nearZeroEpsilon is the threshold below which a component counts as zero.
const nearZeroEpsilon = 1e-8

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Point is a Vec3 denoting a position in space.
type Point = Vec3

// Color is a Vec3 holding RGB radiance. Channels are nominally in [0,1]
// during shading but are not clamped until output encoding.
type Color = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector scaled by the inverse of a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector yields NaN components, which propagate
// through shading into the output rather than being treated as an error.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Pow returns the vector with every component raised to the given power
func (v Vec3) Pow(exp float64) Vec3 {
	return Vec3{
		X: math.Pow(v.X, exp),
		Y: math.Pow(v.Y, exp),
		Z: math.Pow(v.Z, exp),
	}
}

// NearZero reports whether every component is smaller than nearZeroEpsilon
// in absolute value
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < nearZeroEpsilon &&
		math.Abs(v.Y) < nearZeroEpsilon &&
		math.Abs(v.Z) < nearZeroEpsilon
}

// String renders the vector as "[x y z]"
func (v Vec3) String() string {
	return fmt.Sprintf("[%v %v %v]", v.X, v.Y, v.Z)
}

// ParseVec3 parses a vector from a string of three coordinates.
// Coordinates may be separated by spaces, commas or semicolons, and the
// whole triple may be wrapped in brackets: "1,2,3", "[1 2 3]", "(1;2;3)".
func ParseVec3(s string) (Vec3, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.Trim(trimmed, "[](){}<>")

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})
	if len(fields) != 3 {
		return Vec3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i, field := range fields {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("invalid coordinate %q: %w", field, err)
		}
		coords[i] = val
	}
	return Vec3{coords[0], coords[1], coords[2]}, nil
}

// RandomVec3 generates a vector with each component uniform in [min, max)
func RandomVec3(min, max float64, random *rand.Rand) Vec3 {
	return Vec3{
		X: min + (max-min)*random.Float64(),
		Y: min + (max-min)*random.Float64(),
		Z: min + (max-min)*random.Float64(),
	}
}

// RandomUnitVector generates a random unit vector uniformly distributed
// over the unit sphere via rejection sampling. Samples with a squared norm
// outside [1e-160, 1) are rejected; the lower bound keeps the subsequent
// normalization away from overflow.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		v := RandomVec3(-1, 1, random)
		lenSq := v.LengthSquared()
		if lenSq >= 1e-160 && lenSq < 1.0 {
			return v.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk (z = 0)
// via rejection sampling
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		v := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if v.LengthSquared() < 1.0 {
			return v
		}
	}
}
