package vehicle

import (
	"context"
	"fmt"
	"time"

	"multirotor-sim/internal/earth"
	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/firmware"
	"multirotor-sim/internal/kinematics"
	"multirotor-sim/internal/vectormath"
)

// Raw input channel layout of the firmware binding: X (roll), Y (yaw),
// F (throttle), Z (inverted pitch), then the discrete switches.
const (
	channelRoll     = 0
	channelYaw      = 1
	channelThrottle = 2
	channelPitch    = 3
	channelSwitch1  = 4
)

// quadXFromCCW remaps the vehicle's canonical counter-clockwise rotor
// index to the firmware's QuadX physical convention.
var quadXFromCCW = [4]int{1, 2, 3, 0}

// DriverFactory builds the opaque firmware for a board and comm link.
type DriverFactory func(*firmware.Board, *firmware.CommLink) firmware.Driver

// Config is the explicit construction-time configuration of a
// QuadController; there is no global settings store.
type Config struct {
	Params    Params
	NewDriver DriverFactory
}

// QuadController bridges simulated sensors and environment to a
// four-rotor firmware binding. It exclusively owns its board, comm link
// and driver; the environment and kinematics are borrowed from the host
// and bound via InitializePhysics before the first Update.
//
// High-level motion commands are deliberate stubs in this binding: they
// report trivial success or ErrNotImplemented and never effect motion.
type QuadController struct {
	params Params

	board    *firmware.Board
	commLink *firmware.CommLink
	driver   firmware.Driver

	env *environment.Environment
	kin *kinematics.State
}

// NewQuadController wires the board, comm link and firmware driver, and
// runs the driver's one-time setup.
func NewQuadController(cfg Config) (*QuadController, error) {
	if cfg.NewDriver == nil {
		return nil, fmt.Errorf("vehicle: driver factory is required")
	}
	params := cfg.Params
	if params.RotorCount == 0 {
		params = DefaultParams()
		params.RemoteControlID = cfg.Params.RemoteControlID
	}
	if params.RotorCount != firmware.MotorCount {
		return nil, fmt.Errorf("%w: firmware binding supports %d rotors, configured %d",
			ErrBadRotorIndex, firmware.MotorCount, params.RotorCount)
	}

	board := firmware.NewBoard()
	commLink := firmware.NewCommLink()
	driver := cfg.NewDriver(board, commLink)
	if err := driver.Setup(); err != nil {
		return nil, fmt.Errorf("vehicle: firmware setup: %w", err)
	}

	return &QuadController{
		params:   params,
		board:    board,
		commLink: commLink,
		driver:   driver,
	}, nil
}

// InitializePhysics binds the borrowed environment and kinematics. Both
// must be non-nil and must outlive the controller; validation happens here
// at wiring time, not at use time.
func (c *QuadController) InitializePhysics(env *environment.Environment, kin *kinematics.State) error {
	if env == nil || kin == nil {
		return ErrNotWired
	}
	c.env = env
	c.kin = kin
	return nil
}

// Reset requests a firmware-level system reset (a simulated reboot).
func (c *QuadController) Reset() {
	c.board.SystemReset()
}

// Update notifies the firmware that a fresh inertial sample is available,
// then advances its loop by one synchronous step.
func (c *QuadController) Update() error {
	if c.env == nil || c.kin == nil {
		return ErrNotWired
	}
	c.board.NotifySensorUpdated(firmware.SensorImu)
	return c.driver.Loop()
}

func (c *QuadController) Start() error { return nil }

func (c *QuadController) Stop() {}

// VertexCount returns the configured rotor count.
func (c *QuadController) VertexCount() int { return c.params.RotorCount }

// VertexControlSignal returns the motor command for a logical
// counter-clockwise rotor index, remapped to the firmware's QuadX
// convention. Indices beyond the supported four are a fatal configuration
// error.
func (c *QuadController) VertexControlSignal(rotorIndex int) (float64, error) {
	if rotorIndex < 0 || rotorIndex >= len(quadXFromCCW) {
		return 0, fmt.Errorf("%w: index %d", ErrBadRotorIndex, rotorIndex)
	}
	return c.board.MotorControlSignal(quadXFromCCW[rotorIndex])
}

// StatusMessages drains queued firmware diagnostics into out.
func (c *QuadController) StatusMessages(out *[]string) {
	c.commLink.GetStatusMessages(out)
}

// CommandPeriod is the nominal tick period the host should drive Update
// at.
func (c *QuadController) CommandPeriod() time.Duration { return commandPeriod }

// RemoteControlID reports which RC feeds this vehicle.
func (c *QuadController) RemoteControlID() int { return c.params.RemoteControlID }

// SetRCData maps normalized pilot input onto the firmware's raw channels.
// When the link is down (rc.Connected false) no channels are written and
// the firmware holds its last received values: deliberate
// hold-last-command under lost link.
func (c *QuadController) SetRCData(rc RCData) {
	if !rc.Connected {
		return
	}
	// Channel writes on a valid index cannot fail; errors ignored.
	_ = c.board.SetInputChannel(channelRoll, angleToPwm(rc.Roll))
	_ = c.board.SetInputChannel(channelYaw, angleToPwm(rc.Yaw))
	_ = c.board.SetInputChannel(channelThrottle, thrustToPwm(rc.Throttle))
	_ = c.board.SetInputChannel(channelPitch, angleToPwm(-rc.Pitch))
	for i, sw := range rc.Switches {
		_ = c.board.SetInputChannel(channelSwitch1+i, switchToPwm(sw, rc.switchMax()))
	}
}

// Position reads the borrowed kinematics directly; always current as of
// the last host physics step.
func (c *QuadController) Position() vectormath.Vector3 { return c.kin.Pose.Position }

// Velocity reads the borrowed kinematics directly.
func (c *QuadController) Velocity() vectormath.Vector3 { return c.kin.Twist.Linear }

// Orientation reads the borrowed kinematics directly.
func (c *QuadController) Orientation() vectormath.Quaternion { return c.kin.Pose.Orientation }

// HomePoint is the geo-point captured at environment initialization.
func (c *QuadController) HomePoint() earth.GeoPoint { return c.env.InitialState().GeoPoint }

// GpsLocation is the current geo-point.
func (c *QuadController) GpsLocation() earth.GeoPoint { return c.env.State().GeoPoint }

// TakeoffZ is the default takeoff altitude, NED metres.
func (c *QuadController) TakeoffZ() float64 { return c.params.TakeoffZ }

// DistanceAccuracy is the position-command tolerance in metres.
func (c *QuadController) DistanceAccuracy() float64 { return c.params.DistanceAccuracy }

// High-level motion commands: trivial success in this binding, motion is
// never effected. The contexts are accepted but unused.

func (c *QuadController) ArmDisarm(context.Context, bool) error { return nil }

func (c *QuadController) Takeoff(context.Context, time.Duration) error { return nil }

func (c *QuadController) Land(context.Context) error { return nil }

func (c *QuadController) GoHome(context.Context) error { return nil }

func (c *QuadController) Hover(context.Context) error { return nil }

// Offboard command setters are not supported by this binding.

func (c *QuadController) CommandVelocity(vx, vy, vz, yaw float64) error {
	return fmt.Errorf("commandVelocity: %w", ErrNotImplemented)
}

func (c *QuadController) CommandVelocityZ(vx, vy, z, yaw float64) error {
	return fmt.Errorf("commandVelocityZ: %w", ErrNotImplemented)
}

func (c *QuadController) CommandPosition(x, y, z, yaw float64) error {
	return fmt.Errorf("commandPosition: %w", ErrNotImplemented)
}

func (c *QuadController) CommandRollPitchZ(pitch, roll, z, yaw float64) error {
	return fmt.Errorf("commandRollPitchZ: %w", ErrNotImplemented)
}

// IsOffboardMode is always false: this binding has no offboard support.
func (c *QuadController) IsOffboardMode() bool { return false }

// SetOffboardMode is not supported by this binding.
func (c *QuadController) SetOffboardMode(on bool) error {
	return fmt.Errorf("setOffboardMode: %w", ErrNotImplemented)
}

// IsSimulationMode is always true for the simulated binding.
func (c *QuadController) IsSimulationMode() bool { return true }

// SetSimulationMode accepts only the simulated mode.
func (c *QuadController) SetSimulationMode(on bool) error {
	if !on {
		return fmt.Errorf("setSimulationMode(false): %w", ErrNotImplemented)
	}
	return nil
}

// Board exposes the owned board adapter for host-side test fixtures.
func (c *QuadController) Board() *firmware.Board { return c.board }

// angleToPwm maps [-1,1] onto [1000,2000] centered at 1500.
func angleToPwm(angle float64) uint16 {
	return uint16(angle*500 + 1500)
}

// thrustToPwm maps [0,1] onto [1000,2000], clamping negatives to idle.
func thrustToPwm(thrust float64) uint16 {
	if thrust < 0 {
		thrust = 0
	}
	return uint16(thrust*1000 + 1000)
}

// switchToPwm spaces discrete positions evenly across [1000,2000].
func switchToPwm(val, max uint) uint16 {
	if max == 0 {
		max = 1
	}
	return uint16(1000*float64(val)/float64(max) + 1000)
}
