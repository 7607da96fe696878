// Package sim is the host-side simulation loop: it drives the environment,
// sensors and vehicle controller once per controller tick, feeding
// scripted pilot input. Single-threaded and cooperative; each tick must
// finish before the next begins.
package sim

import (
	"context"
	"time"

	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/kinematics"
	"multirotor-sim/internal/sensors"
	"multirotor-sim/internal/vehicle"
)

// ControlledVehicle is the controller surface the runner needs: the tick
// synchronization point plus RC input.
type ControlledVehicle interface {
	Update() error
	SetRCData(rc vehicle.RCData)
	CommandPeriod() time.Duration
}

// Runner owns the per-tick ordering contract: host writes state, then
// environment updates, then sensors, then the controller. There is no
// physics integrator here; position and orientation hold whatever the
// owner of the kinematic state last wrote.
type Runner struct {
	env     *environment.Environment
	kin     *kinematics.State
	sensors *sensors.Collection
	ctrl    ControlledVehicle
	script  *Script

	elapsed time.Duration
	ticks   uint64

	// OnTick, when set, observes every completed tick.
	OnTick func(tick uint64)
}

// NewRunner wires the borrowed world state to the controller. The script
// is optional; without one no RC data is fed and the firmware holds its
// last channel values.
func NewRunner(env *environment.Environment, kin *kinematics.State, col *sensors.Collection, ctrl ControlledVehicle, script *Script) *Runner {
	return &Runner{env: env, kin: kin, sensors: col, ctrl: ctrl, script: script}
}

// Ticks returns the number of completed ticks.
func (r *Runner) Ticks() uint64 { return r.ticks }

// Elapsed returns the accumulated simulated time.
func (r *Runner) Elapsed() time.Duration { return r.elapsed }

// Step advances the simulation by one tick of dt. Deterministic; used by
// Run and directly by tests.
func (r *Runner) Step(dt time.Duration) error {
	// Host write-back happens before anything reads state this tick.
	r.env.SetPosition(r.kin.Pose.Position)
	r.env.Update()
	r.sensors.Update()

	if r.script != nil {
		r.ctrl.SetRCData(r.script.At(r.elapsed))
	}
	if err := r.ctrl.Update(); err != nil {
		return err
	}

	r.elapsed += dt
	r.ticks++
	if r.OnTick != nil {
		r.OnTick(r.ticks)
	}
	return nil
}

// Run steps the simulation at the controller's command period until ctx is
// done or the bound duration elapses. A zero duration runs until
// cancellation (or script end when a script is set).
func (r *Runner) Run(ctx context.Context, duration time.Duration) error {
	period := r.ctrl.CommandPeriod()

	if duration == 0 && r.script != nil {
		duration = r.script.Duration
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		if duration > 0 && r.elapsed >= duration {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Step(period); err != nil {
				return err
			}
		}
	}
}
