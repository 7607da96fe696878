package sensors

import (
	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/kinematics"
	"multirotor-sim/internal/vectormath"
)

// ImuReading is one body-frame inertial snapshot.
type ImuReading struct {
	AngularVelocity    vectormath.Vector3 // body frame, rad/s
	LinearAcceleration vectormath.Vector3 // body frame specific force, m/s²
	Orientation        vectormath.Quaternion
	Valid              bool
}

// ImuSensor derives gyro and accelerometer readings from the borrowed
// kinematic state. The accelerometer reports specific force: kinematic
// acceleration minus gravity, rotated into the body frame.
type ImuSensor struct {
	kin *kinematics.State
	env *environment.Environment

	gyroNoise  *vectormath.RandomVectorGaussian
	accelNoise *vectormath.RandomVectorGaussian

	reading ImuReading
}

// NewImuSensor borrows kin and env; both must outlive the sensor.
func NewImuSensor(kin *kinematics.State, env *environment.Environment, noise NoiseConfig) *ImuSensor {
	return &ImuSensor{
		kin:        kin,
		env:        env,
		gyroNoise:  vectormath.NewRandomVectorGaussian(0, noise.GyroStdDev),
		accelNoise: vectormath.NewRandomVectorGaussian(0, noise.AccelStdDev),
	}
}

// Update recomputes the snapshot from the current kinematics.
func (s *ImuSensor) Update() {
	pose := s.kin.Pose

	angular := vectormath.TransformToBodyFrame(s.kin.Twist.Angular, pose.Orientation, true)
	specificForce := s.kin.Accelerations.Linear.Sub(s.env.State().Gravity)
	accel := vectormath.TransformToBodyFrame(specificForce, pose.Orientation, true)

	s.reading = ImuReading{
		AngularVelocity:    angular.Add(s.gyroNoise.Next()),
		LinearAcceleration: accel.Add(s.accelNoise.Next()),
		Orientation:        pose.Orientation,
		Valid:              true,
	}
}

// Reading returns the latest snapshot; Valid is false before the first
// Update.
func (s *ImuSensor) Reading() ImuReading { return s.reading }

// Reset rewinds the noise streams and invalidates the snapshot.
func (s *ImuSensor) Reset() {
	s.gyroNoise.Reset()
	s.accelNoise.Reset()
	s.reading = ImuReading{}
}
