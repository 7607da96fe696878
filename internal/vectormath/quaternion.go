package vectormath

import (
	"fmt"
	"math"
)

// Quaternion is an orientation, body frame -> world frame. Components are
// (W, X, Y, Z) with W the scalar part. Kernel operations that take an
// assumeUnit flag may only be given unit-norm quaternions when the flag is
// true.
type Quaternion struct {
	W, X, Y, Z float64
}

// Identity returns the no-rotation quaternion.
func Identity() Quaternion { return Quaternion{W: 1} }

// Mul returns the Hamilton product q*o (apply o first, then q).
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Inverse is the true algebraic inverse. For unit quaternions Conjugate is
// equivalent and cheaper.
func (q Quaternion) Inverse() Quaternion {
	n2 := q.NormSquared()
	if n2 == 0 {
		return NaNQuaternion()
	}
	c := q.Conjugate()
	return Quaternion{W: c.W / n2, X: c.X / n2, Y: c.Y / n2, Z: c.Z / n2}
}

func (q Quaternion) NormSquared() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

func (q Quaternion) Norm() float64 { return math.Sqrt(q.NormSquared()) }

// Normalized guards against accumulated floating error; a zero quaternion
// normalizes to the NaN sentinel.
func (q Quaternion) Normalized() Quaternion {
	n := q.Norm()
	if n == 0 {
		return NaNQuaternion()
	}
	return Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Negate flips the sign of all components. -q represents the same rotation
// as q.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// FlipZAxis mirrors the rotation for a frame whose Z axis points the other
// way.
func (q Quaternion) FlipZAxis() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: q.Z}
}

// Vec returns the vector (imaginary) part.
func (q Quaternion) Vec() Vector3 { return Vector3{q.X, q.Y, q.Z} }

func (q Quaternion) String() string {
	return fmt.Sprintf("[%f, %f, %f, %f]", q.W, q.X, q.Y, q.Z)
}

// NaNQuaternion is the "invalid / no data yet" sentinel.
func NaNQuaternion() Quaternion {
	nan := math.NaN()
	return Quaternion{nan, nan, nan, nan}
}

// HasNaN reports whether any component is NaN.
func (q Quaternion) HasNaN() bool {
	return math.IsNaN(q.W) || math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsNaN(q.Z)
}

// RotateVector applies q to v. When assumeUnit is true the conjugate is
// used for the inverse term; callers must then guarantee |q| == 1.
func RotateVector(v Vector3, q Quaternion, assumeUnit bool) Vector3 {
	qi := q.Inverse()
	if assumeUnit {
		qi = q.Conjugate()
	}
	vq := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	return q.Mul(vq).Mul(qi).Vec()
}

// RotateVectorReverse applies the inverse rotation of q to v.
func RotateVectorReverse(v Vector3, q Quaternion, assumeUnit bool) Vector3 {
	qi := q.Inverse()
	if assumeUnit {
		qi = q.Conjugate()
	}
	vq := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	return qi.Mul(vq).Mul(q).Vec()
}

// ToEulerianAngle decomposes q into intrinsic Z-Y'-X'' Euler angles. The
// asin argument is clamped to [-1,1]: at the gimbal-lock boundary floating
// round-off can push it just outside the valid domain, which is not an
// error.
func ToEulerianAngle(q Quaternion) (pitch, roll, yaw float64) {
	ysqr := q.Y * q.Y
	t0 := -2*(ysqr+q.Z*q.Z) + 1
	t1 := 2 * (q.X*q.Y + q.W*q.Z)
	t2 := -2 * (q.X*q.Z - q.W*q.Y)
	t3 := 2 * (q.Y*q.Z + q.W*q.X)
	t4 := -2*(q.X*q.X+ysqr) + 1

	if t2 > 1 {
		t2 = 1
	}
	if t2 < -1 {
		t2 = -1
	}

	pitch = math.Asin(t2)
	roll = math.Atan2(t3, t4)
	yaw = math.Atan2(t1, t0)
	return pitch, roll, yaw
}

// ToQuaternion builds a unit quaternion from Z-Y'-X'' Euler angles. Inverse
// of ToEulerianAngle away from gimbal lock.
func ToQuaternion(pitch, roll, yaw float64) Quaternion {
	t0 := math.Cos(yaw * 0.5)
	t1 := math.Sin(yaw * 0.5)
	t2 := math.Cos(roll * 0.5)
	t3 := math.Sin(roll * 0.5)
	t4 := math.Cos(pitch * 0.5)
	t5 := math.Sin(pitch * 0.5)

	return Quaternion{
		W: t0*t2*t4 + t1*t3*t5,
		X: t0*t3*t4 - t1*t2*t5,
		Y: t0*t2*t5 + t1*t3*t4,
		Z: t1*t2*t4 - t0*t3*t5,
	}
}

// GetYaw is a closed-form yaw extraction, independent of ToEulerianAngle
// but consistent with it at non-singular attitudes.
func GetYaw(q Quaternion) float64 {
	return math.Atan2(2*(q.Z*q.W+q.X*q.Y), -1+2*(q.W*q.W+q.X*q.X))
}

// GetPitch is a closed-form pitch extraction.
func GetPitch(q Quaternion) float64 {
	return math.Asin(2 * (q.Y*q.W - q.Z*q.X))
}

// GetRoll is a closed-form roll extraction.
func GetRoll(q Quaternion) float64 {
	return math.Atan2(2*(q.Z*q.Y+q.W*q.X), 1-2*(q.X*q.X+q.Y*q.Y))
}

// YawFromQuaternion extracts the yaw part using RPY / euler z-y'-x''
// angles.
func YawFromQuaternion(q Quaternion) float64 {
	return math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
}

// QuaternionFromYaw builds a pure yaw rotation about the down axis.
func QuaternionFromYaw(yaw float64) Quaternion {
	return Quaternion{W: math.Cos(yaw * 0.5), Z: math.Sin(yaw * 0.5)}
}

// ToAngularVelocity estimates the body angular rate from two orientations
// separated by deltaSec, combining per-axis Euler rates through the body
// rate kinematic transform evaluated at the end attitude. The result is
// numerically degenerate near pitch ±90°; that limitation is not handled
// here.
func ToAngularVelocity(start, end Quaternion, deltaSec float64) Vector3 {
	pS, rS, yS := ToEulerianAngle(start)
	pE, rE, yE := ToEulerianAngle(end)

	pRate := (pE - pS) / deltaSec
	rRate := (rE - rS) / deltaSec
	yRate := (yE - yS) / deltaSec

	wx := rRate - yRate*math.Sin(pE)
	wy := pRate*math.Cos(rE) + yRate*math.Sin(rE)*math.Cos(pE)
	wz := -pRate*math.Sin(rE) + yRate*math.Cos(rE)*math.Cos(pE)

	return Vector3{wx, wy, wz}
}
