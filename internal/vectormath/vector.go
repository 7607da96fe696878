// Package vectormath is the attitude and coordinate-transform kernel.
//
// Conventions:
//   - Vectors are in the local NED frame (north-east-down) unless noted.
//   - Quaternions are unit-norm and rotate body-frame vectors into the
//     world frame.
//   - All angles are radians except the explicit degree helpers.
//
// Everything here is a pure function over value types; nothing allocates
// shared state and nothing returns errors. "No data yet" is expressed with
// NaN sentinels, detectable via HasNaN.
package vectormath

import (
	"fmt"
	"math"
)

// Vector3 is a 3-component value in the local NED frame.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns the unit vector along v, or v unchanged when the norm
// is zero.
func (v Vector3) Normalized() Vector3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

func (v Vector3) String() string {
	return fmt.Sprintf("[%f, %f, %f]", v.X, v.Y, v.Z)
}

// NaNVector is the "invalid / no data yet" sentinel.
func NaNVector() Vector3 {
	nan := math.NaN()
	return Vector3{nan, nan, nan}
}

// HasNaN reports whether any component is NaN.
func (v Vector3) HasNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// NormalizeAngleDegrees wraps an angle in degrees onto (-180, 180].
func NormalizeAngleDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	switch {
	case angle > 180:
		return angle - 360
	case angle <= -180:
		return angle + 360
	default:
		return angle
	}
}
