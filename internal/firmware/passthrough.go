package firmware

import "fmt"

// Throttle lives on raw input channel 2 (the F channel of the
// roll/yaw/throttle/pitch layout written by the controller).
const throttleChannel = 2

// Passthrough is a stand-in Driver with no control laws: on every fresh
// IMU sample it maps the raw throttle channel uniformly onto all four
// motors. It exists so the demo binary and tests can close the
// sensor→firmware→actuator loop without a real firmware.
type Passthrough struct {
	board *Board
	link  *CommLink
	setup bool
}

// NewPassthrough wires the driver to its board and comm link.
func NewPassthrough(board *Board, link *CommLink) *Passthrough {
	return &Passthrough{board: board, link: link}
}

// Setup initializes the driver. Motors start stopped.
func (p *Passthrough) Setup() error {
	if p.board == nil {
		return fmt.Errorf("firmware: passthrough needs a board")
	}
	p.setup = true
	if p.link != nil {
		p.link.Log("passthrough firmware ready")
	}
	return nil
}

// Loop consumes a pending IMU notification and refreshes motor outputs.
// Without a fresh sample the outputs hold their last values.
func (p *Passthrough) Loop() error {
	if !p.setup {
		return fmt.Errorf("firmware: loop before setup")
	}
	if !p.board.ConsumeSensorUpdate(SensorImu) {
		return nil
	}

	pwm, err := p.board.InputChannel(throttleChannel)
	if err != nil {
		return err
	}
	signal := (float64(pwm) - 1000) / 1000
	if signal < 0 {
		signal = 0
	}
	if signal > 1 {
		signal = 1
	}

	for i := 0; i < MotorCount; i++ {
		if err := p.board.SetMotorControlSignal(i, signal); err != nil {
			return err
		}
	}
	return nil
}
