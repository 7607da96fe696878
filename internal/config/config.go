// Package config loads the YAML settings file for the simulator binary.
// Loaded values are passed explicitly into constructors; there is no
// global settings store.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Home    HomeConfig    `yaml:"home"`
	Vehicle VehicleConfig `yaml:"vehicle"`
	Sim     SimConfig     `yaml:"sim"`
}

// HomeConfig is the fixed home geo-point captured at environment
// initialization.
type HomeConfig struct {
	LatitudeDeg  float64 `yaml:"latitude_deg"`
	LongitudeDeg float64 `yaml:"longitude_deg"`
	AltitudeM    float64 `yaml:"altitude_m"`
}

// VehicleConfig holds the static vehicle parameters.
type VehicleConfig struct {
	RotorCount        int     `yaml:"rotor_count"`
	RemoteControlID   int     `yaml:"remote_control_id"`
	TakeoffZM         float64 `yaml:"takeoff_z_m"`
	DistanceAccuracyM float64 `yaml:"distance_accuracy_m"`
	GyroNoiseStdDev   float64 `yaml:"gyro_noise_std_dev"`
	AccelNoiseStdDev  float64 `yaml:"accel_noise_std_dev"`
	BaroNoiseStdDevPa float64 `yaml:"baro_noise_std_dev_pa"`
}

// SimConfig holds the demo run settings.
type SimConfig struct {
	// Duration bounds the run; zero means run until a signal arrives.
	Duration time.Duration `yaml:"duration"`
	// RCScript is an optional YAML keyframe script of pilot input.
	RCScript string `yaml:"rc_script"`
	// LogEvery is the tick interval between progress log lines.
	LogEvery int `yaml:"log_every"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Home.LatitudeDeg < -90 || cfg.Home.LatitudeDeg > 90 {
		return Config{}, fmt.Errorf("home.latitude_deg out of range: %v", cfg.Home.LatitudeDeg)
	}
	if cfg.Home.LongitudeDeg < -180 || cfg.Home.LongitudeDeg > 180 {
		return Config{}, fmt.Errorf("home.longitude_deg out of range: %v", cfg.Home.LongitudeDeg)
	}

	if cfg.Vehicle.RotorCount == 0 {
		cfg.Vehicle.RotorCount = 4
	}
	if cfg.Vehicle.RotorCount < 0 {
		return Config{}, fmt.Errorf("vehicle.rotor_count must be positive")
	}
	if cfg.Vehicle.TakeoffZM == 0 {
		cfg.Vehicle.TakeoffZM = -3
	}
	if cfg.Vehicle.TakeoffZM > 0 {
		return Config{}, fmt.Errorf("vehicle.takeoff_z_m must be negative (NED, up is negative)")
	}
	if cfg.Vehicle.DistanceAccuracyM == 0 {
		cfg.Vehicle.DistanceAccuracyM = 0.5
	}
	if cfg.Vehicle.DistanceAccuracyM < 0 {
		return Config{}, fmt.Errorf("vehicle.distance_accuracy_m must be positive")
	}

	if cfg.Sim.Duration < 0 {
		return Config{}, fmt.Errorf("sim.duration must not be negative")
	}
	if cfg.Sim.LogEvery <= 0 {
		cfg.Sim.LogEvery = 50
	}

	return cfg, nil
}
