package firmware

import (
	"fmt"
	"time"
)

const (
	// InputChannelCount matches a 16-channel RC receiver surface.
	InputChannelCount = 16
	// MotorCount is the number of motor outputs the board exposes,
	// indexed in the firmware's own physical (QuadX) convention.
	MotorCount = 4
)

// Board is the hardware-abstraction adapter between the simulation and a
// firmware Driver. The controller writes raw PWM-equivalent input channels
// and reads motor outputs; the driver consumes sensor-updated
// notifications and writes motor outputs. Single-threaded by contract:
// everything happens inside one simulation tick.
type Board struct {
	inputs  [InputChannelCount]uint16
	motors  [MotorCount]float64
	pending [sensorTypeCount]bool

	resetCount int
	epoch      time.Time
}

// NewBoard returns a board with all channels at zero and the micros clock
// started.
func NewBoard() *Board {
	return &Board{epoch: time.Now()}
}

// SetInputChannel writes one raw input channel in the conventional
// [1000,2000] servo-pulse range. Values outside the range are stored as-is;
// range policy belongs to the caller.
func (b *Board) SetInputChannel(index int, pwm uint16) error {
	if index < 0 || index >= InputChannelCount {
		return fmt.Errorf("%w: %d", ErrBadInputChannel, index)
	}
	b.inputs[index] = pwm
	return nil
}

// InputChannel reads back one raw input channel.
func (b *Board) InputChannel(index int) (uint16, error) {
	if index < 0 || index >= InputChannelCount {
		return 0, fmt.Errorf("%w: %d", ErrBadInputChannel, index)
	}
	return b.inputs[index], nil
}

// SetMotorControlSignal is the driver-side write of one motor output in
// [0,1], indexed in the firmware's physical convention.
func (b *Board) SetMotorControlSignal(index int, signal float64) error {
	if index < 0 || index >= MotorCount {
		return fmt.Errorf("%w: %d", ErrBadMotorIndex, index)
	}
	b.motors[index] = signal
	return nil
}

// MotorControlSignal reads one motor output in [0,1].
func (b *Board) MotorControlSignal(index int) (float64, error) {
	if index < 0 || index >= MotorCount {
		return 0, fmt.Errorf("%w: %d", ErrBadMotorIndex, index)
	}
	return b.motors[index], nil
}

// NotifySensorUpdated marks a fresh sample of the given sensor as pending
// for the next driver Loop.
func (b *Board) NotifySensorUpdated(s SensorType) {
	if s < 0 || s >= sensorTypeCount {
		return
	}
	b.pending[s] = true
}

// ConsumeSensorUpdate reports and clears the pending flag for the given
// sensor. Drivers call this at the top of Loop.
func (b *Board) ConsumeSensorUpdate(s SensorType) bool {
	if s < 0 || s >= sensorTypeCount {
		return false
	}
	was := b.pending[s]
	b.pending[s] = false
	return was
}

// SystemReset simulates a firmware reboot: motors stop, pending sensor
// notifications are dropped, input channels hold their last values as a
// real receiver would.
func (b *Board) SystemReset() {
	b.motors = [MotorCount]float64{}
	b.pending = [sensorTypeCount]bool{}
	b.resetCount++
}

// ResetCount returns how many SystemReset calls have occurred.
func (b *Board) ResetCount() int { return b.resetCount }

// Micros returns the monotonic microsecond clock since board construction.
func (b *Board) Micros() int64 {
	return time.Since(b.epoch).Microseconds()
}
