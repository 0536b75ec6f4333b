package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/notify"
)

const (
	DefaultVelocity      = 10.0
	DefaultTotalDistance = 1000.0
	DefaultHeight        = 600.0
	DefaultFPS           = 60
	DefaultAddr          = "localhost:8080"
	DefaultPingInterval  = 30 * time.Second
	DefaultVolume        = 0.25
	DefaultTheme         = "dark"
)

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Notify     NotifyConfig     `yaml:"notify"`
	Server     ServerConfig     `yaml:"server"`
	Audio      AudioConfig      `yaml:"audio"`
}

type SimulationConfig struct {
	motion.Config `yaml:",inline"`
	TimeStep      float64 `yaml:"time_step"`
}

type DisplayConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
	Theme  string  `yaml:"theme"`
}

type NotifyConfig struct {
	Visible time.Duration `yaml:"visible"`
	Fade    time.Duration `yaml:"fade"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	PingInterval time.Duration `yaml:"ping_interval"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Config: motion.Config{
				InitialVelocity: DefaultVelocity,
				TotalDistance:   DefaultTotalDistance,
			},
			TimeStep: motion.DefaultTimeStep,
		},
		Display: DisplayConfig{
			Width:  motion.DefaultViewportWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Theme:  DefaultTheme,
		},
		Notify: NotifyConfig{
			Visible: notify.DefaultVisible,
			Fade:    notify.DefaultFade,
		},
		Server: ServerConfig{
			Addr:         DefaultAddr,
			PingInterval: DefaultPingInterval,
		},
		Audio: AudioConfig{Volume: DefaultVolume},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Motion returns the run parameters.
func (c *Config) Motion() motion.Config {
	return c.Simulation.Config
}

func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if c.Simulation.TimeStep <= 0 {
		return fmt.Errorf("time_step must be positive, got %g", c.Simulation.TimeStep)
	}
	if c.Display.Width <= motion.StartOffset || c.Display.Height <= 0 {
		return fmt.Errorf("display size %gx%g is too small", c.Display.Width, c.Display.Height)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Display.FPS)
	}
	if c.Notify.Visible < 0 || c.Notify.Fade < 0 {
		return fmt.Errorf("notification timings must not be negative")
	}
	if c.Server.PingInterval <= 0 {
		return fmt.Errorf("ping_interval must be positive, got %s", c.Server.PingInterval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}

// FrameInterval is the display refresh period.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}
