// Package firmware defines the contracts between the vehicle controller
// and an opaque flight firmware: a Driver advanced one synchronous Loop per
// tick, a Board carrying raw input channels and motor outputs, and a
// CommLink for human-readable diagnostics. Control laws live behind the
// Driver interface and are out of scope here.
package firmware

// SensorType identifies which simulated sensor has a fresh sample pending
// on the board.
type SensorType int

const (
	SensorImu SensorType = iota
	SensorBarometer

	sensorTypeCount
)

// Driver is the opaque firmware implementation. Setup is called once at
// construction time; Loop advances the firmware's internal state by one
// step and must return before the simulation tick completes.
type Driver interface {
	Setup() error
	Loop() error
}
