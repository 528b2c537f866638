package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/velosim/internal/vehicle"
)

// Defaults follow a Tesla Model S 100D.
const (
	DefaultWheelbase = 2.96
	DefaultMaxSteer  = 33 * math.Pi / 180
	DefaultDt        = 0.05
	DefaultDuration  = 30.0
	DefaultVelocity  = 5.0
	DefaultKp        = 2.0
	DefaultKi        = 0.1
	DefaultKd        = 0.5
	DefaultRadius    = 50.0
	DefaultPoints    = 100
)

type Config struct {
	Wheelbase  float64      `yaml:"wheelbase"`
	MaxSteer   float64      `yaml:"max_steer"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	Controller string       `yaml:"controller"`
	InitPose   PoseConfig   `yaml:"init_pose"`
	Cruise     CruiseConfig `yaml:"cruise"`
	Track      TrackConfig  `yaml:"track"`
}

type PoseConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Yaw      float64 `yaml:"yaw"`
	Velocity float64 `yaml:"velocity"`
}

type CruiseConfig struct {
	Kp     float64 `yaml:"kp"`
	Ki     float64 `yaml:"ki"`
	Kd     float64 `yaml:"kd"`
	Target float64 `yaml:"target"`
}

type TrackConfig struct {
	File   string  `yaml:"file"`
	Radius float64 `yaml:"radius"`
	Points int     `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Wheelbase:  DefaultWheelbase,
		MaxSteer:   DefaultMaxSteer,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Controller: "none",
		InitPose: PoseConfig{
			Velocity: DefaultVelocity,
		},
		Cruise: CruiseConfig{
			Kp:     DefaultKp,
			Ki:     DefaultKi,
			Kd:     DefaultKd,
			Target: DefaultVelocity,
		},
		Track: TrackConfig{
			Radius: DefaultRadius,
			Points: DefaultPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ModelParams returns the vehicle parameters described by the config.
func (c *Config) ModelParams() vehicle.Params {
	return vehicle.Params{
		Wheelbase: c.Wheelbase,
		MaxSteer:  c.MaxSteer,
		Dt:        c.Dt,
	}
}

// StartPose returns the configured initial pose.
func (c *Config) StartPose() vehicle.Pose {
	return vehicle.Pose{
		X:        c.InitPose.X,
		Y:        c.InitPose.Y,
		Yaw:      c.InitPose.Yaw,
		Velocity: c.InitPose.Velocity,
	}
}
