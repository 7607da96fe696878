package vectormath

import "math/rand"

// Per-axis seed offsets. Each axis draws from its own stream so that noise
// on one axis never perturbs the sequence of another.
const (
	seedAxisX int64 = 1
	seedAxisY int64 = 2
	seedAxisZ int64 = 3
)

// RandomVector draws per-axis uniform values in [min, max). Reset rewinds
// every axis stream to its initial state, so two identically configured
// generators produce identical sequences.
type RandomVector struct {
	min, max Vector3
	rx       *rand.Rand
	ry       *rand.Rand
	rz       *rand.Rand
}

// NewRandomVector creates a uniform generator with the same bounds on all
// axes.
func NewRandomVector(min, max float64) *RandomVector {
	return NewRandomVectorFromBounds(
		Vector3{min, min, min},
		Vector3{max, max, max},
	)
}

// NewRandomVectorFromBounds creates a uniform generator with per-axis
// bounds.
func NewRandomVectorFromBounds(min, max Vector3) *RandomVector {
	r := &RandomVector{min: min, max: max}
	r.Reset()
	return r
}

// Reset reseeds all axis streams to their initial state.
func (r *RandomVector) Reset() {
	r.rx = rand.New(rand.NewSource(seedAxisX))
	r.ry = rand.New(rand.NewSource(seedAxisY))
	r.rz = rand.New(rand.NewSource(seedAxisZ))
}

// Next draws one vector.
func (r *RandomVector) Next() Vector3 {
	return Vector3{
		X: r.min.X + r.rx.Float64()*(r.max.X-r.min.X),
		Y: r.min.Y + r.ry.Float64()*(r.max.Y-r.min.Y),
		Z: r.min.Z + r.rz.Float64()*(r.max.Z-r.min.Z),
	}
}

// RandomVectorGaussian draws per-axis normal values with independent
// streams per axis.
type RandomVectorGaussian struct {
	mean, stddev Vector3
	rx           *rand.Rand
	ry           *rand.Rand
	rz           *rand.Rand
}

// NewRandomVectorGaussian creates a Gaussian generator with the same mean
// and stddev on all axes.
func NewRandomVectorGaussian(mean, stddev float64) *RandomVectorGaussian {
	return NewRandomVectorGaussianFromMoments(
		Vector3{mean, mean, mean},
		Vector3{stddev, stddev, stddev},
	)
}

// NewRandomVectorGaussianFromMoments creates a Gaussian generator with
// per-axis moments.
func NewRandomVectorGaussianFromMoments(mean, stddev Vector3) *RandomVectorGaussian {
	r := &RandomVectorGaussian{mean: mean, stddev: stddev}
	r.Reset()
	return r
}

// Reset reseeds all axis streams to their initial state.
func (r *RandomVectorGaussian) Reset() {
	r.rx = rand.New(rand.NewSource(seedAxisX))
	r.ry = rand.New(rand.NewSource(seedAxisY))
	r.rz = rand.New(rand.NewSource(seedAxisZ))
}

// Next draws one vector.
func (r *RandomVectorGaussian) Next() Vector3 {
	return Vector3{
		X: r.mean.X + r.rx.NormFloat64()*r.stddev.X,
		Y: r.mean.Y + r.ry.NormFloat64()*r.stddev.Y,
		Z: r.mean.Z + r.rz.NormFloat64()*r.stddev.Z,
	}
}
