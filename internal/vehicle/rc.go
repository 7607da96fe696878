package vehicle

// RCData is one tick of normalized pilot input. Axes are in [-1,1],
// throttle in [0,1]; Switches holds up to 8 discrete channel positions.
// Produced once per tick by an RC source, consumed immediately, never
// retained.
type RCData struct {
	Roll     float64
	Pitch    float64
	Yaw      float64
	Throttle float64

	Switches [8]uint

	// SwitchPositions is the number of positions each switch has; the
	// mapped PWM values are spaced evenly across [1000,2000]. Zero means
	// two-position switches.
	SwitchPositions uint

	Connected bool
}

// switchMax returns the highest valid switch value.
func (rc RCData) switchMax() uint {
	if rc.SwitchPositions < 2 {
		return 1
	}
	return rc.SwitchPositions - 1
}
