package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"multirotor-sim/internal/config"
	"multirotor-sim/internal/earth"
	"multirotor-sim/internal/environment"
	"multirotor-sim/internal/firmware"
	"multirotor-sim/internal/kinematics"
	"multirotor-sim/internal/sensors"
	"multirotor-sim/internal/sim"
	"multirotor-sim/internal/vehicle"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	env := environment.New(environment.State{
		GeoPoint: earth.GeoPoint{
			Latitude:  cfg.Home.LatitudeDeg,
			Longitude: cfg.Home.LongitudeDeg,
			Altitude:  cfg.Home.AltitudeM,
		},
	})
	kin := kinematics.ZeroState()
	col := sensors.NewCollection(&kin, env, sensors.NoiseConfig{
		GyroStdDev:     cfg.Vehicle.GyroNoiseStdDev,
		AccelStdDev:    cfg.Vehicle.AccelNoiseStdDev,
		PressureStdDev: cfg.Vehicle.BaroNoiseStdDevPa,
	})

	ctrl, err := vehicle.NewQuadController(vehicle.Config{
		Params: vehicle.Params{
			RotorCount:       cfg.Vehicle.RotorCount,
			RemoteControlID:  cfg.Vehicle.RemoteControlID,
			TakeoffZ:         cfg.Vehicle.TakeoffZM,
			DistanceAccuracy: cfg.Vehicle.DistanceAccuracyM,
		},
		NewDriver: func(b *firmware.Board, l *firmware.CommLink) firmware.Driver {
			return firmware.NewPassthrough(b, l)
		},
	})
	if err != nil {
		log.Fatalf("controller init failed: %v", err)
	}
	if err := ctrl.InitializePhysics(env, &kin); err != nil {
		log.Fatalf("physics wiring failed: %v", err)
	}

	var script *sim.Script
	if cfg.Sim.RCScript != "" {
		script, err = sim.LoadScript(cfg.Sim.RCScript)
		if err != nil {
			log.Fatalf("rc script load failed: %v", err)
		}
		log.Printf("rc script %s (%d keyframes, %s)", cfg.Sim.RCScript, len(script.Keyframes), script.Duration)
	}

	runner := sim.NewRunner(env, &kin, col, ctrl, script)
	runner.OnTick = func(tick uint64) {
		if tick%uint64(cfg.Sim.LogEvery) != 0 {
			return
		}
		m0, _ := ctrl.VertexControlSignal(0)
		var msgs []string
		ctrl.StatusMessages(&msgs)
		for _, m := range msgs {
			log.Printf("firmware: %s", m)
		}
		log.Printf("tick=%s gps=%s motor0=%.3f density=%.4f",
			humanize.Comma(int64(tick)), ctrl.GpsLocation(), m0, env.State().AirDensity)
	}

	log.Printf("multirotor-sim starting")
	log.Printf("home %s period=%s rotors=%d", env.InitialState().GeoPoint, ctrl.CommandPeriod(), ctrl.VertexCount())

	if err := ctrl.Start(); err != nil {
		log.Fatalf("controller start failed: %v", err)
	}

	err = runner.Run(ctx, cfg.Sim.Duration)
	ctrl.Stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("simulation stopped: %v", err)
	}
	log.Printf("multirotor-sim stopping after %s ticks (%s simulated)",
		humanize.Comma(int64(runner.Ticks())), runner.Elapsed())
}
