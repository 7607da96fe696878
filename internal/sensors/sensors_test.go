package sensors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multirotor-sim/internal/earth"
	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/kinematics"
	"multirotor-sim/internal/vectormath"
)

func testWorld() (*kinematics.State, *environment.Environment) {
	kin := kinematics.ZeroState()
	env := environment.New(environment.State{
		GeoPoint: earth.GeoPoint{Latitude: 47.64, Longitude: -122.14, Altitude: 0},
	})
	return &kin, env
}

func TestImuSensor_HoverReadsMinusGravity(t *testing.T) {
	kin, env := testWorld()
	imu := NewImuSensor(kin, env, NoiseConfig{})

	assert.False(t, imu.Reading().Valid)
	imu.Update()

	r := imu.Reading()
	require.True(t, r.Valid)
	// At rest the specific force is -g along body down.
	assert.InDelta(t, 0, r.LinearAcceleration.X, 1e-9)
	assert.InDelta(t, 0, r.LinearAcceleration.Y, 1e-9)
	assert.InDelta(t, -earth.StandardGravity, r.LinearAcceleration.Z, 1e-9)
	assert.InDelta(t, 0, r.AngularVelocity.Norm(), 1e-12)
}

func TestImuSensor_RotatesRatesIntoBodyFrame(t *testing.T) {
	kin, env := testWorld()
	kin.Pose.Orientation = vectormath.QuaternionFromYaw(math.Pi / 2)
	kin.Twist.Angular = vectormath.Vector3{X: 0.2} // world-frame north axis

	imu := NewImuSensor(kin, env, NoiseConfig{})
	imu.Update()

	r := imu.Reading()
	// A world-north rate seen from a 90°-yawed body lands on -Y.
	assert.InDelta(t, 0, r.AngularVelocity.X, 1e-9)
	assert.InDelta(t, -0.2, r.AngularVelocity.Y, 1e-9)
	assert.Equal(t, kin.Pose.Orientation, r.Orientation)
}

func TestImuSensor_NoiseIsDeterministic(t *testing.T) {
	kin, env := testWorld()
	noise := NoiseConfig{GyroStdDev: 0.01, AccelStdDev: 0.1}

	a := NewImuSensor(kin, env, noise)
	b := NewImuSensor(kin, env, noise)

	for i := 0; i < 5; i++ {
		a.Update()
		b.Update()
		require.Equal(t, a.Reading(), b.Reading(), "tick %d", i)
	}

	a.Reset()
	assert.False(t, a.Reading().Valid)
	c := NewImuSensor(kin, env, noise)
	for i := 0; i < 5; i++ {
		a.Update()
		c.Update()
		require.Equal(t, c.Reading(), a.Reading(), "tick %d after reset", i)
	}
}

func TestImuSensor_NaNStateReadsAsNaN(t *testing.T) {
	kin := kinematics.NaNState()
	_, env := testWorld()
	imu := NewImuSensor(&kin, env, NoiseConfig{})

	imu.Update()

	// The no-data-yet sentinel must survive derivation, not turn into
	// plausible numbers.
	r := imu.Reading()
	assert.True(t, r.AngularVelocity.HasNaN())
	assert.True(t, r.LinearAcceleration.HasNaN())
	assert.True(t, r.Orientation.HasNaN())
}

func TestBaroSensor_TracksEnvironmentPressure(t *testing.T) {
	_, env := testWorld()
	baro := NewBaroSensor(env, NoiseConfig{})

	baro.Update()
	sea := baro.Reading()
	require.True(t, sea.Valid)
	assert.InDelta(t, earth.SeaLevelPressurePa, sea.Pressure, 1e-3)
	assert.InDelta(t, 0, sea.Altitude, 1e-9)

	env.SetPosition(vectormath.Vector3{Z: -1000})
	env.Update()
	baro.Update()
	high := baro.Reading()
	assert.Less(t, high.Pressure, sea.Pressure)
	assert.InDelta(t, 1000, high.Altitude, 1e-6)
}

func TestCollection_UpdateAndReset(t *testing.T) {
	kin, env := testWorld()
	col := NewCollection(kin, env, NoiseConfig{GyroStdDev: 0.01, PressureStdDev: 5})

	col.Update()
	assert.True(t, col.Imu.Reading().Valid)
	assert.True(t, col.Baro.Reading().Valid)

	col.Reset()
	assert.False(t, col.Imu.Reading().Valid)
	assert.False(t, col.Baro.Reading().Valid)
}
