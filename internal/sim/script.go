package sim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"multirotor-sim/internal/vehicle"
)

// Script is a deterministic, keyframed pilot-input description.
//
// Time is expressed as Go duration strings (e.g. "0s", "250ms", "10s").
// If Duration is zero it is derived from the latest keyframe time.
// Lookup is step-hold: a keyframe's values apply from its time until the
// next keyframe.
//
// YAML schema (v1):
//
//	version: 1
//	duration: 30s
//	keyframes:
//	  - t: 0s
//	    throttle: 0.5
//	  - t: 5s
//	    throttle: 0.7
//	    roll: 0.2
//	    switches: [1, 0, 0, 0, 0, 0, 0, 0]
//	  - t: 10s
//	    disconnected: true
//
// Keyframes must be sorted by non-decreasing t.
//
// Keep this struct stable: scripts are test fixtures.
type Script struct {
	Version   int           `yaml:"version"`
	Duration  time.Duration `yaml:"duration"`
	Keyframes []Keyframe    `yaml:"keyframes"`
}

// Keyframe is a time-stamped RC input state. A disconnected keyframe
// models lost link: the controller writes nothing and the firmware holds
// its last received channels.
type Keyframe struct {
	T            time.Duration `yaml:"t"`
	Roll         float64       `yaml:"roll"`
	Pitch        float64       `yaml:"pitch"`
	Yaw          float64       `yaml:"yaw"`
	Throttle     float64       `yaml:"throttle"`
	Switches     []uint        `yaml:"switches"`
	Disconnected bool          `yaml:"disconnected"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("rc script: %w", err)
	}

	if s.Version == 0 {
		s.Version = 1
	}
	if s.Version != 1 {
		return nil, fmt.Errorf("rc script: unsupported version %d", s.Version)
	}
	if len(s.Keyframes) == 0 {
		return nil, fmt.Errorf("rc script: needs at least one keyframe")
	}

	for i, kf := range s.Keyframes {
		if kf.T < 0 {
			return nil, fmt.Errorf("rc script: keyframe %d has negative t", i)
		}
		if i > 0 && kf.T < s.Keyframes[i-1].T {
			return nil, fmt.Errorf("rc script: keyframes not sorted at index %d", i)
		}
		if len(kf.Switches) > 8 {
			return nil, fmt.Errorf("rc script: keyframe %d has %d switches, max 8", i, len(kf.Switches))
		}
		if err := checkAxis("roll", kf.Roll); err != nil {
			return nil, fmt.Errorf("rc script: keyframe %d: %w", i, err)
		}
		if err := checkAxis("pitch", kf.Pitch); err != nil {
			return nil, fmt.Errorf("rc script: keyframe %d: %w", i, err)
		}
		if err := checkAxis("yaw", kf.Yaw); err != nil {
			return nil, fmt.Errorf("rc script: keyframe %d: %w", i, err)
		}
		if kf.Throttle < 0 || kf.Throttle > 1 {
			return nil, fmt.Errorf("rc script: keyframe %d: throttle %v outside [0,1]", i, kf.Throttle)
		}
	}

	if s.Duration == 0 {
		s.Duration = s.Keyframes[len(s.Keyframes)-1].T
	}
	return &s, nil
}

func checkAxis(name string, v float64) error {
	if v < -1 || v > 1 {
		return fmt.Errorf("%s %v outside [-1,1]", name, v)
	}
	return nil
}

// At returns the RC input effective at elapsed time t. Before the first
// keyframe the link is reported down.
func (s *Script) At(t time.Duration) vehicle.RCData {
	idx := -1
	for i, kf := range s.Keyframes {
		if kf.T > t {
			break
		}
		idx = i
	}
	if idx < 0 {
		return vehicle.RCData{}
	}

	kf := s.Keyframes[idx]
	rc := vehicle.RCData{
		Roll:      kf.Roll,
		Pitch:     kf.Pitch,
		Yaw:       kf.Yaw,
		Throttle:  kf.Throttle,
		Connected: !kf.Disconnected,
	}
	for i, sw := range kf.Switches {
		rc.Switches[i] = sw
	}
	return rc
}
