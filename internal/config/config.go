package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/quadviz/internal/anim"
	"github.com/san-kum/quadviz/internal/pose"
	"github.com/san-kum/quadviz/internal/render"
	"github.com/san-kum/quadviz/internal/vehicle"
)

const (
	DefaultIntervalMs = 50
	DefaultGridStep   = 1.0
	DefaultTheme      = "night"
	DefaultLabel      = "Quadrotor1"
	DefaultColor      = "g"
)

const (
	PathSweep = "sweep"
	PathOrbit = "orbit"
	PathPoses = "poses"
)

var ErrUnknownPath = errors.New("config: unknown path kind")

type Config struct {
	IntervalMs   int             `yaml:"interval_ms"`
	WarmupFrames int             `yaml:"warmup_frames"`
	TraceCeiling int             `yaml:"trace_ceiling"`
	TrimBlock    int             `yaml:"trim_block"`
	Viewport     render.Rect     `yaml:"viewport"`
	GridStep     float64         `yaml:"grid_step"`
	Theme        string          `yaml:"theme"`
	Vehicles     []VehicleConfig `yaml:"vehicles"`
}

type VehicleConfig struct {
	Label      string     `yaml:"label"`
	TraceColor string     `yaml:"trace_color"`
	Radius     float64    `yaml:"radius"`
	Path       PathConfig `yaml:"path"`
}

// PathConfig selects a pose generator. Fields not used by Kind are ignored.
type PathConfig struct {
	Kind        string      `yaml:"kind"`
	From        pose.Point  `yaml:"from,omitempty"`
	To          pose.Point  `yaml:"to,omitempty"`
	Steps       int         `yaml:"steps,omitempty"`
	HeadingStep float64     `yaml:"heading_step,omitempty"`
	Center      pose.Point  `yaml:"center,omitempty"`
	Radius      float64     `yaml:"radius,omitempty"`
	Poses       []pose.Pose `yaml:"poses,omitempty"`
}

func DefaultSweepPath() PathConfig {
	return PathConfig{
		Kind:        PathSweep,
		From:        pose.DefaultSweepFrom,
		To:          pose.DefaultSweepTo,
		Steps:       pose.DefaultSweepSteps,
		HeadingStep: pose.DefaultSweepHeadingStep,
	}
}

func DefaultConfig() *Config {
	return &Config{
		IntervalMs:   DefaultIntervalMs,
		WarmupFrames: anim.DefaultWarmupFrames,
		TraceCeiling: anim.DefaultTraceCeiling,
		TrimBlock:    anim.DefaultTrimBlock,
		Viewport:     anim.DefaultViewport,
		GridStep:     DefaultGridStep,
		Theme:        DefaultTheme,
		Vehicles: []VehicleConfig{{
			Label:      DefaultLabel,
			TraceColor: DefaultColor,
			Radius:     vehicle.DefaultRadius,
			Path:       DefaultSweepPath(),
		}},
	}
}

// Load reads a YAML scenario on top of the defaults. A file that lists
// vehicles replaces the default vehicle entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Vehicles = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Vehicles) == 0 {
		cfg.Vehicles = DefaultConfig().Vehicles
	}
	for i := range cfg.Vehicles {
		cfg.Vehicles[i].applyDefaults(i)
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

func (v *VehicleConfig) applyDefaults(i int) {
	if v.Label == "" {
		v.Label = fmt.Sprintf("Quadrotor%d", i+1)
	}
	if v.TraceColor == "" {
		v.TraceColor = DefaultColor
	}
	if v.Radius == 0 {
		v.Radius = vehicle.DefaultRadius
	}
	if v.Path.Kind == "" {
		v.Path = DefaultSweepPath()
	}
}

func (c *Config) DriverConfig() anim.Config {
	return anim.Config{
		Interval:     time.Duration(c.IntervalMs) * time.Millisecond,
		WarmupFrames: c.WarmupFrames,
		TraceCeiling: c.TraceCeiling,
		TrimBlock:    c.TrimBlock,
		Viewport:     c.Viewport,
	}
}

// Validate checks everything BuildVehicles and anim.New would reject.
func (c *Config) Validate() error {
	if err := c.DriverConfig().Validate(); err != nil {
		return err
	}
	if c.GridStep < 0 {
		return fmt.Errorf("config: grid_step %v must not be negative", c.GridStep)
	}
	_, err := c.BuildVehicles()
	return err
}

func (c *Config) BuildVehicles() ([]*vehicle.Vehicle, error) {
	out := make([]*vehicle.Vehicle, 0, len(c.Vehicles))
	for i, vc := range c.Vehicles {
		v, err := vc.Build()
		if err != nil {
			return nil, fmt.Errorf("config: vehicle %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (v VehicleConfig) Build() (*vehicle.Vehicle, error) {
	color, err := render.ResolveColor(v.TraceColor)
	if err != nil {
		return nil, err
	}
	seq, err := v.Path.Sequence()
	if err != nil {
		return nil, err
	}
	return vehicle.New(seq, v.Radius, color, v.Label)
}

func (p PathConfig) Sequence() (*pose.Sequence, error) {
	switch p.Kind {
	case PathSweep:
		return pose.Sweep(p.From, p.To, p.Steps, p.HeadingStep)
	case PathOrbit:
		return pose.Orbit(p.Center, p.Radius, p.Steps)
	case PathPoses:
		return pose.NewSequence(p.Poses)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, p.Kind)
}
