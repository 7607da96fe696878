package vehicle

import "errors"

var (
	// ErrNotImplemented marks a capability this controller binding does
	// not support, as opposed to a supported operation that failed.
	ErrNotImplemented = errors.New("vehicle: not implemented by this controller binding")

	// ErrBadRotorIndex is a fatal configuration error: the host asked for
	// an actuator the firmware binding cannot address.
	ErrBadRotorIndex = errors.New("vehicle: rotor index not supported by firmware binding")

	// ErrNotWired is returned when per-tick methods run before
	// InitializePhysics has bound the environment and kinematics.
	ErrNotWired = errors.New("vehicle: physics references not initialized")
)
