// Package environment maintains the position-indexed atmospheric and
// gravity state for one vehicle. The home geo-point is fixed at
// construction; afterwards every derived field is a pure function of the
// current position, recomputed once per tick by Update.
package environment

import (
	"multirotor-sim/internal/earth"
	"multirotor-sim/internal/vectormath"
)

// State carries the environment fields for one position. GeoPoint,
// MinZOverGround and Position are inputs; Gravity, AirPressure,
// Temperature and AirDensity are derived and must never be mutated
// independently of Position.
type State struct {
	GeoPoint       earth.GeoPoint
	MinZOverGround float64
	Position       vectormath.Vector3

	Gravity     vectormath.Vector3
	AirPressure float64
	Temperature float64
	AirDensity  float64
}

// Environment computes atmosphere and gravity from the current position.
// Not safe for concurrent use; the host loop is the single writer.
type Environment struct {
	initial State
	current State
	home    earth.HomeGeoPoint
}

// New fixes the home geo-point from the initial state's GeoPoint, derives
// the initial atmosphere, and enters the initialized state. Constructing a
// new Environment is the only way to change home.
func New(initial State) *Environment {
	e := &Environment{initial: initial}
	e.home = earth.NewHomeGeoPoint(initial.GeoPoint)
	updateState(&e.initial, e.home)
	e.Reset()
	return e
}

// SetPosition records a new local NED position pushed by the host physics
// step. Derived fields stay stale until the next Update call.
func (e *Environment) SetPosition(p vectormath.Vector3) {
	e.current.Position = p
}

// State returns the current environment state.
func (e *Environment) State() State { return e.current }

// InitialState returns the state supplied at construction, with its
// derived fields filled in.
func (e *Environment) InitialState() State { return e.initial }

// Home returns the fixed home reference.
func (e *Environment) Home() earth.HomeGeoPoint { return e.home }

// Reset restores the current state to the initial state. The home
// reference is untouched.
func (e *Environment) Reset() {
	e.current = e.initial
}

// Update recomputes the geo-point from the current position and the
// atmosphere and gravity from the resulting altitude. Call once per tick
// after the position is set.
func (e *Environment) Update() {
	updateState(&e.current, e.home)
}

func updateState(s *State, home earth.HomeGeoPoint) {
	s.GeoPoint = earth.NedToGeodetic(s.Position, home)

	geopot := earth.Geopotential(s.GeoPoint.Altitude / 1000)
	s.Temperature = earth.StandardTemperature(geopot)
	s.AirPressure = earth.StandardPressure(geopot, s.Temperature)
	s.AirDensity = earth.AirDensity(s.AirPressure, s.Temperature)

	// Gravity direction is fixed to local down.
	s.Gravity = vectormath.Vector3{Z: earth.Gravity(s.GeoPoint.Altitude)}
}
