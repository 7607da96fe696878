package sensors

import (
	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/vectormath"
)

// BaroReading is one barometric snapshot.
type BaroReading struct {
	Pressure float64 // Pa
	Altitude float64 // m MSL
	Valid    bool
}

// BaroSensor derives pressure from the environment's atmosphere with
// additive Gaussian noise. Only the X stream of the vector generator is
// consumed; pressure is scalar.
type BaroSensor struct {
	env   *environment.Environment
	noise *vectormath.RandomVectorGaussian

	reading BaroReading
}

// NewBaroSensor borrows env; it must outlive the sensor.
func NewBaroSensor(env *environment.Environment, noise NoiseConfig) *BaroSensor {
	return &BaroSensor{
		env:   env,
		noise: vectormath.NewRandomVectorGaussian(0, noise.PressureStdDev),
	}
}

// Update recomputes the snapshot from the current environment state.
func (s *BaroSensor) Update() {
	st := s.env.State()
	s.reading = BaroReading{
		Pressure: st.AirPressure + s.noise.Next().X,
		Altitude: st.GeoPoint.Altitude,
		Valid:    true,
	}
}

// Reading returns the latest snapshot; Valid is false before the first
// Update.
func (s *BaroSensor) Reading() BaroReading { return s.reading }

// Reset rewinds the noise stream and invalidates the snapshot.
func (s *BaroSensor) Reset() {
	s.noise.Reset()
	s.reading = BaroReading{}
}
