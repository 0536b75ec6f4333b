package motion

import (
	"math"
	"strconv"
	"strings"
)

// Input is the raw text of the input form.
type Input struct {
	Velocity     string `json:"velocity"`
	Acceleration string `json:"acceleration"`
	Target       string `json:"target"`
	Total        string `json:"total"`
}

// InputOf formats cfg back into form text.
func InputOf(cfg Config) Input {
	in := Input{
		Velocity:     formatField(cfg.InitialVelocity),
		Acceleration: formatField(cfg.Acceleration),
		Total:        formatField(cfg.TotalDistance),
	}
	if cfg.HasTarget() {
		in.Target = formatField(cfg.TargetDistance)
	}
	return in
}

// ParseConfig parses and validates the form. An empty acceleration means 0
// and an empty or non-positive target means no target.
func ParseConfig(in Input) (Config, error) {
	var cfg Config
	var err error

	if cfg.InitialVelocity, err = parseField("velocity", in.Velocity); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(in.Acceleration) != "" {
		if cfg.Acceleration, err = parseField("acceleration", in.Acceleration); err != nil {
			return Config{}, err
		}
	}
	if cfg.TotalDistance, err = ParseTotal(in.Total); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(in.Target) != "" {
		target, err := parseField("target distance", in.Target)
		if err != nil {
			return Config{}, err
		}
		if target > 0 {
			cfg.TargetDistance = target
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseTotal parses the total track distance on its own, as used when only
// that field changes.
func ParseTotal(s string) (float64, error) {
	total, err := parseField("total distance", s)
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, &ValidationError{Field: "total distance", Value: s, Reason: "must be greater than zero"}
	}
	return total, nil
}

// Validate checks the domain rules of a configuration.
func (c Config) Validate() error {
	if !finite(c.InitialVelocity) || c.InitialVelocity <= 0 {
		return &ValidationError{Field: "velocity", Value: formatField(c.InitialVelocity), Reason: "must be greater than zero"}
	}
	if !finite(c.Acceleration) || c.Acceleration < 0 {
		return &ValidationError{Field: "acceleration", Value: formatField(c.Acceleration), Reason: "must be zero or positive"}
	}
	if !finite(c.TotalDistance) || c.TotalDistance <= 0 {
		return &ValidationError{Field: "total distance", Value: formatField(c.TotalDistance), Reason: "must be greater than zero"}
	}
	if !finite(c.TargetDistance) || c.TargetDistance < 0 {
		return &ValidationError{Field: "target distance", Value: formatField(c.TargetDistance), Reason: "must be zero or positive"}
	}
	if c.TargetDistance > c.TotalDistance {
		return &ValidationError{
			Field:  "target distance",
			Value:  formatField(c.TargetDistance),
			Reason: "cannot exceed the total distance (" + formatField(c.TotalDistance) + "m)",
		}
	}
	return nil
}

func parseField(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, &ValidationError{Field: field, Value: s, Reason: "is not a number"}
	}
	return v, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatField(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
