package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/mrua/internal/motion"
)

var ErrUnknownPreset = errors.New("unknown preset")

var Presets = map[string]motion.Config{
	"uniform":      {InitialVelocity: 10, TotalDistance: 500},
	"target":       {InitialVelocity: 50, TotalDistance: 500, TargetDistance: 100},
	"accelerating": {InitialVelocity: 5, Acceleration: 2, TotalDistance: 1000, TargetDistance: 400},
	"sprint":       {InitialVelocity: 1, Acceleration: 9.81, TotalDistance: 100, TargetDistance: 60},
	"long-track":   {InitialVelocity: 120, Acceleration: 0.5, TotalDistance: 20000, TargetDistance: 15000},
}

func GetPreset(name string) *motion.Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the run parameters with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w %q (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.Simulation.Config = *p
	return nil
}
