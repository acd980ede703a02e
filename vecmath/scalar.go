// Package vecmath implements the 2D vector primitives used throughout the
// simulation core: construction, arithmetic, products, interpolation and
// the guarded operations (normalize, project, clamp-length) that must return
// a safe value instead of propagating NaN on degenerate input.
package vecmath

import "math"

// Epsilon is the default tolerance below which a vector's length is
// treated as zero by guarded operations (Normalize, Project, ClampLength).
const Epsilon = 1e-10

// Abs returns the absolute value of v.
func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// Sqrt returns the square root of v.
func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Sin returns the sine of v (radians).
func Sin(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

// Cos returns the cosine of v (radians).
func Cos(v float32) float32 {
	return float32(math.Cos(float64(v)))
}

// Clamp clamps x to the closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
