package vehicle

import "time"

// Params is the static, read-only vehicle configuration. It is owned by
// the caller and never mutated by the controller.
type Params struct {
	// RotorCount is the number of logical rotors, indexed counter
	// clockwise starting north-east.
	RotorCount int

	// RemoteControlID selects which attached RC produces input for this
	// vehicle.
	RemoteControlID int

	// TakeoffZ is the default takeoff altitude in NED metres (negative is
	// up); far enough to clear backwash turbulence.
	TakeoffZ float64

	// DistanceAccuracy is the position-command tolerance in metres.
	DistanceAccuracy float64
}

// DefaultParams returns the reference quad configuration.
func DefaultParams() Params {
	return Params{
		RotorCount:       4,
		RemoteControlID:  0,
		TakeoffZ:         -3,
		DistanceAccuracy: 0.5,
	}
}

// commandPeriod is the nominal controller tick (50 Hz). The host scheduler
// is expected to call Update at this cadence; deviation is tolerated but
// degrades the angular-velocity finite difference.
const commandPeriod = 20 * time.Millisecond
