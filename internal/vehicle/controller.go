package vehicle

import (
	"context"
	"time"

	"multirotor-sim/internal/earth"
	"multirotor-sim/internal/vectormath"
)

// Controller is the capability set every vehicle binding provides to the
// host loop. Reset requests a firmware-level reboot, not a reinit of the
// controller's own fields; Update is the single per-tick synchronization
// point between simulated sensors and firmware logic.
type Controller interface {
	Reset()
	Update() error
	Start() error
	Stop()

	VertexCount() int
	// VertexControlSignal returns the actuator command in [0,1] for the
	// logical (counter-clockwise) rotor index. An index beyond the
	// binding's actuator count is a fatal configuration error.
	VertexControlSignal(rotorIndex int) (float64, error)

	StatusMessages(out *[]string)
	CommandPeriod() time.Duration
}

// RCReceiver is implemented by bindings that accept pilot input.
type RCReceiver interface {
	RemoteControlID() int
	SetRCData(rc RCData)
}

// DroneMotion is the optional high-level motion capability. Contexts are
// accepted for cancellation but this layer may ignore them; bindings that
// do not implement a command return ErrNotImplemented rather than failing
// generically.
type DroneMotion interface {
	ArmDisarm(ctx context.Context, arm bool) error
	Takeoff(ctx context.Context, maxWait time.Duration) error
	Land(ctx context.Context) error
	GoHome(ctx context.Context) error
	Hover(ctx context.Context) error

	CommandVelocity(vx, vy, vz, yaw float64) error
	CommandVelocityZ(vx, vy, z, yaw float64) error
	CommandPosition(x, y, z, yaw float64) error
	CommandRollPitchZ(pitch, roll, z, yaw float64) error

	Position() vectormath.Vector3
	Velocity() vectormath.Vector3
	Orientation() vectormath.Quaternion
	HomePoint() earth.GeoPoint
	GpsLocation() earth.GeoPoint
}

// OffboardCapable is the optional computer-control capability.
type OffboardCapable interface {
	IsOffboardMode() bool
	SetOffboardMode(on bool) error
	IsSimulationMode() bool
	SetSimulationMode(on bool) error
}
