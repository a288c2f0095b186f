package vmath

import (
	"math"
	"time"
)

// Vec2 is a 2D vector in world units (pixels)
// Value type, every operation returns a new vector
type Vec2 struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Zero is the zero vector
var Zero = Vec2{}

// V returns a vector from components
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the pairwise sum of two or more vectors
func Add(v1, v2 Vec2, rest ...Vec2) Vec2 {
	sum := Vec2{X: v1.X + v2.X, Y: v1.Y + v2.Y}
	for _, v := range rest {
		sum.X += v.X
		sum.Y += v.Y
	}
	return sum
}

// Scale multiplies vector by scalar factor
func Scale(k float64, v Vec2) Vec2 {
	return Vec2{X: k * v.X, Y: k * v.Y}
}

// Displacement returns to - from
func Displacement(from, to Vec2) Vec2 {
	return Vec2{X: to.X - from.X, Y: to.Y - from.Y}
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns Euclidean length
func Magnitude(v Vec2) float64 {
	return math.Sqrt(MagnitudeSq(v))
}

// Normalize returns unit vector, zero-safe: (0,0) maps to (0,0)
func Normalize(v Vec2) Vec2 {
	mag := Magnitude(v)
	if mag == 0 {
		return Zero
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// DistanceSq returns squared distance between two points
func DistanceSq(a, b Vec2) float64 {
	return MagnitudeSq(Displacement(a, b))
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Millis converts a duration to fractional milliseconds, the unit of all per-tick physics constants
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
