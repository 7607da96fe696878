// Package sensors produces simulated inertial and barometric readings from
// the externally owned kinematics and environment state. Readings are
// snapshots: the host loop calls Update once per tick after the physics
// write-back, and consumers read the latest values. Noise streams are
// deterministic and rewindable via Reset.
package sensors

import (
	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/kinematics"
)

// Collection aggregates the simulated sensors of one vehicle.
type Collection struct {
	Imu  *ImuSensor
	Baro *BaroSensor
}

// NewCollection builds an IMU and a barometer over the borrowed kinematics
// and environment. Both references must outlive the collection.
func NewCollection(kin *kinematics.State, env *environment.Environment, noise NoiseConfig) *Collection {
	return &Collection{
		Imu:  NewImuSensor(kin, env, noise),
		Baro: NewBaroSensor(env, noise),
	}
}

// Update refreshes every sensor snapshot from the current borrowed state.
func (c *Collection) Update() {
	c.Imu.Update()
	c.Baro.Update()
}

// Reset rewinds all noise streams and clears the snapshots.
func (c *Collection) Reset() {
	c.Imu.Reset()
	c.Baro.Reset()
}

// NoiseConfig holds per-sensor noise standard deviations. Zero values mean
// a noiseless sensor.
type NoiseConfig struct {
	GyroStdDev     float64 // rad/s per axis
	AccelStdDev    float64 // m/s² per axis
	PressureStdDev float64 // Pa
}
