package config

import (
	"sort"

	"github.com/san-kum/quadviz/internal/pose"
	"github.com/san-kum/quadviz/internal/vehicle"
)

// Presets are built on demand so callers can mutate the result freely.
var Presets = map[string]func() *Config{
	"single": DefaultConfig,
	"pair": func() *Config {
		cfg := DefaultConfig()
		cfg.Vehicles = append(cfg.Vehicles, VehicleConfig{
			Label:      "Quadrotor2",
			TraceColor: "b",
			Radius:     vehicle.DefaultRadius,
			Path: PathConfig{
				Kind:   PathOrbit,
				Center: pose.Point{X: 5, Y: 5},
				Radius: 6,
				Steps:  180,
			},
		})
		return cfg
	},
	"swarm": func() *Config {
		cfg := DefaultConfig()
		cfg.TraceCeiling = 300
		cfg.TrimBlock = 30
		cfg.Vehicles = []VehicleConfig{
			orbiter("Alpha", "r", 5, 5, 8, 240),
			orbiter("Bravo", "g", 5, 5, 5, 160),
			orbiter("Charlie", "b", 5, 5, 2.5, 90),
			{
				Label:      "Delta",
				TraceColor: "m",
				Radius:     vehicle.DefaultRadius,
				Path: PathConfig{
					Kind:        PathSweep,
					From:        pose.Point{X: -9, Y: 19},
					To:          pose.Point{X: 19, Y: -9},
					Steps:       280,
					HeadingStep: -0.1,
				},
			},
		}
		return cfg
	},
	"hover": func() *Config {
		cfg := DefaultConfig()
		cfg.WarmupFrames = 0
		cfg.Vehicles[0].Path = PathConfig{
			Kind:  PathPoses,
			Poses: []pose.Pose{{X: 5, Y: 5, Heading: 0}, {X: 5, Y: 5, Heading: 0.2}, {X: 5, Y: 5, Heading: 0.4}},
		}
		return cfg
	},
}

func orbiter(label, color string, cx, cy, r float64, steps int) VehicleConfig {
	return VehicleConfig{
		Label:      label,
		TraceColor: color,
		Radius:     vehicle.DefaultRadius,
		Path:       PathConfig{Kind: PathOrbit, Center: pose.Point{X: cx, Y: cy}, Radius: r, Steps: steps},
	}
}

func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
