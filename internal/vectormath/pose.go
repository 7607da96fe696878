package vectormath

// Pose is a rigid-body placement in the world/local-NED frame.
type Pose struct {
	Position    Vector3
	Orientation Quaternion
}

// NaNPose is the "invalid / no data yet" sentinel pose.
func NaNPose() Pose {
	return Pose{Position: NaNVector(), Orientation: NaNQuaternion()}
}

// Sub returns the relative pose of p as seen from rhs's frame.
func (p Pose) Sub(rhs Pose) Pose {
	return Pose{
		Position:    CoordPositionSubtract(p, rhs),
		Orientation: CoordOrientationSubtract(p.Orientation, rhs.Orientation),
	}
}

// CoordPositionSubtract expresses the position difference lhs-rhs in rhs's
// orientation frame.
func CoordPositionSubtract(lhs, rhs Pose) Vector3 {
	diff := lhs.Position.Sub(rhs.Position)
	return RotateVectorReverse(diff, rhs.Orientation, false)
}

// CoordOrientationSubtract returns rhs⁻¹ · lhs, renormalized to unit length
// to absorb accumulated floating error.
func CoordOrientationSubtract(lhs, rhs Quaternion) Quaternion {
	return rhs.Inverse().Mul(lhs).Normalized()
}

// TransformToBodyFrame rotates a world-frame vector into the body frame.
func TransformToBodyFrame(vWorld Vector3, q Quaternion, assumeUnit bool) Vector3 {
	return RotateVectorReverse(vWorld, q, assumeUnit)
}

// TransformToWorldFrame rotates a body-frame vector into the world frame.
func TransformToWorldFrame(vBody Vector3, q Quaternion, assumeUnit bool) Vector3 {
	return RotateVector(vBody, q, assumeUnit)
}

// TransformToBodyFramePose drops the pose translation, then rotates by the
// inverse orientation.
func TransformToBodyFramePose(vWorld Vector3, pose Pose, assumeUnit bool) Vector3 {
	return TransformToBodyFrame(vWorld.Sub(pose.Position), pose.Orientation, assumeUnit)
}

// TransformToWorldFramePose translates first, then rotates the translated
// vector by the pose orientation. pose.Position is expressed in the same
// frame as vBody prior to rotation; the translate-then-rotate order is part
// of the contract and must not be swapped.
func TransformToWorldFramePose(vBody Vector3, pose Pose, assumeUnit bool) Vector3 {
	translated := vBody.Add(pose.Position)
	return TransformToWorldFrame(translated, pose.Orientation, assumeUnit)
}
