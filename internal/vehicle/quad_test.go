package vehicle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multirotor-sim/internal/earth"
	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/firmware"
	"multirotor-sim/internal/kinematics"
	"multirotor-sim/internal/vectormath"
)

func newTestController(t *testing.T) (*QuadController, *environment.Environment, *kinematics.State) {
	t.Helper()

	env := environment.New(environment.State{
		GeoPoint: earth.GeoPoint{Latitude: 47.641468, Longitude: -122.140165, Altitude: 122},
	})
	kin := kinematics.ZeroState()

	c, err := NewQuadController(Config{
		Params: DefaultParams(),
		NewDriver: func(b *firmware.Board, l *firmware.CommLink) firmware.Driver {
			return firmware.NewPassthrough(b, l)
		},
	})
	require.NoError(t, err)
	require.NoError(t, c.InitializePhysics(env, &kin))
	return c, env, &kin
}

func TestNewQuadController_RequiresDriverFactory(t *testing.T) {
	_, err := NewQuadController(Config{Params: DefaultParams()})
	assert.Error(t, err)
}

func TestNewQuadController_RejectsNonQuadParams(t *testing.T) {
	params := DefaultParams()
	params.RotorCount = 6
	_, err := NewQuadController(Config{
		Params: params,
		NewDriver: func(b *firmware.Board, l *firmware.CommLink) firmware.Driver {
			return firmware.NewPassthrough(b, l)
		},
	})
	assert.ErrorIs(t, err, ErrBadRotorIndex)
}

func TestInitializePhysics_ValidatesAtWiringTime(t *testing.T) {
	c, err := NewQuadController(Config{
		Params: DefaultParams(),
		NewDriver: func(b *firmware.Board, l *firmware.CommLink) firmware.Driver {
			return firmware.NewPassthrough(b, l)
		},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, c.InitializePhysics(nil, nil), ErrNotWired)
	assert.ErrorIs(t, c.Update(), ErrNotWired)
}

func TestSetRCData_AxisMapping(t *testing.T) {
	c, _, _ := newTestController(t)

	cases := []struct {
		name    string
		rc      RCData
		channel int
		want    uint16
	}{
		{"roll full right", RCData{Connected: true, Roll: 1}, channelRoll, 2000},
		{"roll full left", RCData{Connected: true, Roll: -1}, channelRoll, 1000},
		{"roll centered", RCData{Connected: true, Roll: 0}, channelRoll, 1500},
		{"yaw full right", RCData{Connected: true, Yaw: 1}, channelYaw, 2000},
		{"pitch is inverted", RCData{Connected: true, Pitch: 1}, channelPitch, 1000},
		{"throttle idle", RCData{Connected: true, Throttle: 0}, channelThrottle, 1000},
		{"throttle full", RCData{Connected: true, Throttle: 1}, channelThrottle, 2000},
		{"throttle clamped below zero", RCData{Connected: true, Throttle: -0.3}, channelThrottle, 1000},
		{"throttle half", RCData{Connected: true, Throttle: 0.5}, channelThrottle, 1500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.SetRCData(tc.rc)
			got, err := c.Board().InputChannel(tc.channel)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSetRCData_SwitchMapping(t *testing.T) {
	c, _, _ := newTestController(t)

	rc := RCData{Connected: true}
	rc.Switches[0] = 1 // two-position: high
	rc.Switches[1] = 0 // two-position: low
	c.SetRCData(rc)

	got, err := c.Board().InputChannel(channelSwitch1)
	require.NoError(t, err)
	assert.Equal(t, uint16(2000), got)

	got, err = c.Board().InputChannel(channelSwitch1 + 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(1000), got)

	// Three-position switch maps its middle detent to the range middle.
	rc.SwitchPositions = 3
	rc.Switches[2] = 1
	c.SetRCData(rc)
	got, err = c.Board().InputChannel(channelSwitch1 + 2)
	require.NoError(t, err)
	assert.Equal(t, uint16(1500), got)
}

func TestSetRCData_DisconnectedHoldsLastCommand(t *testing.T) {
	c, _, _ := newTestController(t)

	c.SetRCData(RCData{Connected: true, Roll: 1, Throttle: 0.8})
	before, err := c.Board().InputChannel(channelRoll)
	require.NoError(t, err)
	require.Equal(t, uint16(2000), before)

	// Lost link: nothing is written, firmware keeps the last values.
	c.SetRCData(RCData{Connected: false, Roll: -1, Throttle: 0})

	after, err := c.Board().InputChannel(channelRoll)
	require.NoError(t, err)
	assert.Equal(t, uint16(2000), after)

	throttle, err := c.Board().InputChannel(channelThrottle)
	require.NoError(t, err)
	assert.Equal(t, uint16(1800), throttle)
}

func TestUpdate_DrivesFirmwareLoop(t *testing.T) {
	c, _, _ := newTestController(t)

	c.SetRCData(RCData{Connected: true, Throttle: 1})
	require.NoError(t, c.Update())

	// Passthrough maps full throttle onto all motors; remapping is a
	// permutation so every logical index reads it back.
	for i := 0; i < c.VertexCount(); i++ {
		v, err := c.VertexControlSignal(i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-12, "rotor %d", i)
	}
}

func TestVertexControlSignal_IndexBeyondRotorCountIsFatal(t *testing.T) {
	c, _, _ := newTestController(t)

	_, err := c.VertexControlSignal(4)
	assert.ErrorIs(t, err, ErrBadRotorIndex)
	_, err = c.VertexControlSignal(-1)
	assert.ErrorIs(t, err, ErrBadRotorIndex)
}

func TestVertexControlSignal_RemapsCCWToQuadX(t *testing.T) {
	c, _, _ := newTestController(t)

	// Write distinct signals in the firmware's physical indexing and read
	// them back through the logical CCW indexing.
	for physical := 0; physical < firmware.MotorCount; physical++ {
		require.NoError(t, c.Board().SetMotorControlSignal(physical, float64(physical)/10))
	}

	wantPhysical := []int{1, 2, 3, 0}
	for logical, physical := range wantPhysical {
		v, err := c.VertexControlSignal(logical)
		require.NoError(t, err)
		assert.InDelta(t, float64(physical)/10, v, 1e-12, "logical rotor %d", logical)
	}
}

func TestReset_RequestsFirmwareReboot(t *testing.T) {
	c, _, _ := newTestController(t)

	c.SetRCData(RCData{Connected: true, Throttle: 1})
	require.NoError(t, c.Update())

	c.Reset()
	assert.Equal(t, 1, c.Board().ResetCount())

	v, err := c.VertexControlSignal(0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestKinematicGetters_ReadBorrowedStateDirectly(t *testing.T) {
	c, _, kin := newTestController(t)

	kin.Pose.Position = vectormath.Vector3{X: 1, Y: 2, Z: -3}
	kin.Twist.Linear = vectormath.Vector3{X: 0.5}
	kin.Pose.Orientation = vectormath.QuaternionFromYaw(0.7)

	// No caching: host writes are visible immediately.
	assert.Equal(t, kin.Pose.Position, c.Position())
	assert.Equal(t, kin.Twist.Linear, c.Velocity())
	assert.Equal(t, kin.Pose.Orientation, c.Orientation())
}

func TestGeoGetters(t *testing.T) {
	c, env, _ := newTestController(t)

	assert.Equal(t, env.InitialState().GeoPoint, c.HomePoint())

	env.SetPosition(vectormath.Vector3{Z: -100})
	env.Update()
	assert.Equal(t, env.State().GeoPoint, c.GpsLocation())
	assert.NotEqual(t, c.HomePoint(), c.GpsLocation())
}

func TestStatusMessages_DrainFirmwareDiagnostics(t *testing.T) {
	c, _, _ := newTestController(t)

	var msgs []string
	c.StatusMessages(&msgs)
	require.NotEmpty(t, msgs) // passthrough logs once at setup

	msgs = msgs[:0]
	c.StatusMessages(&msgs)
	assert.Empty(t, msgs)
}

func TestUnimplementedCommandsAreDistinguishable(t *testing.T) {
	c, _, _ := newTestController(t)

	assert.ErrorIs(t, c.CommandVelocity(1, 0, 0, 0), ErrNotImplemented)
	assert.ErrorIs(t, c.CommandVelocityZ(1, 0, -10, 0), ErrNotImplemented)
	assert.ErrorIs(t, c.CommandPosition(1, 2, -3, 0), ErrNotImplemented)
	assert.ErrorIs(t, c.CommandRollPitchZ(0, 0, -3, 0), ErrNotImplemented)
	assert.ErrorIs(t, c.SetOffboardMode(true), ErrNotImplemented)
	assert.ErrorIs(t, c.SetSimulationMode(false), ErrNotImplemented)

	assert.NoError(t, c.SetSimulationMode(true))
	assert.True(t, c.IsSimulationMode())
	assert.False(t, c.IsOffboardMode())
}

func TestMotionStubsReportTrivialSuccess(t *testing.T) {
	c, _, _ := newTestController(t)
	ctx := context.Background()

	assert.NoError(t, c.ArmDisarm(ctx, true))
	assert.NoError(t, c.Takeoff(ctx, 10*time.Second))
	assert.NoError(t, c.Hover(ctx))
	assert.NoError(t, c.GoHome(ctx))
	assert.NoError(t, c.Land(ctx))
}

func TestCommandPeriod_Is50Hz(t *testing.T) {
	c, _, _ := newTestController(t)
	assert.Equal(t, 20*time.Millisecond, c.CommandPeriod())
}

func TestControllerSatisfiesCapabilityInterfaces(t *testing.T) {
	c, _, _ := newTestController(t)

	var _ Controller = c
	var _ RCReceiver = c
	var _ DroneMotion = c
	var _ OffboardCapable = c
	assert.Equal(t, 4, c.VertexCount())
	assert.Equal(t, 0, c.RemoteControlID())
}
