// Package kinematics defines the vehicle motion state owned by the host
// simulation loop. The controller borrows a *State and must never outlive
// its owner; the host writes it before calling per-tick update methods.
package kinematics

import "multirotor-sim/internal/vectormath"

// Twist is a linear/angular velocity pair, world frame.
type Twist struct {
	Linear  vectormath.Vector3
	Angular vectormath.Vector3
}

// Accelerations is a linear/angular acceleration pair, world frame.
type Accelerations struct {
	Linear  vectormath.Vector3
	Angular vectormath.Vector3
}

// State is the full kinematic state of a rigid body.
type State struct {
	Pose          vectormath.Pose
	Twist         Twist
	Accelerations Accelerations
}

// ZeroState returns a state at the NED origin with identity orientation.
func ZeroState() State {
	return State{Pose: vectormath.Pose{Orientation: vectormath.Identity()}}
}

// NaNState returns the "no data yet" sentinel state.
func NaNState() State {
	return State{
		Pose: vectormath.NaNPose(),
		Twist: Twist{
			Linear:  vectormath.NaNVector(),
			Angular: vectormath.NaNVector(),
		},
		Accelerations: Accelerations{
			Linear:  vectormath.NaNVector(),
			Angular: vectormath.NaNVector(),
		},
	}
}
