package panzoom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a Viewport. The zero value of any field
// means "use the default"; New fills defaults in before validating.
type Config struct {
	// DecayFactor is the momentum velocity multiplier applied per
	// DecayDurationMs after a pan gesture is released. Must be in (0, 1).
	DecayFactor float64 `yaml:"decayFactor"`
	// DecayDurationMs is the time base of the exponential decay, in
	// milliseconds. The decay is time-scaled, so momentum feels identical
	// at any frame rate.
	DecayDurationMs float64 `yaml:"decayDurationMs"`
	// VelocityThreshold is the per-frame pan delta (in pixels) below which
	// momentum stops dead instead of drifting asymptotically.
	VelocityThreshold float64 `yaml:"velocityThreshold"`

	// ScaleEaseDurationMs is the duration of an eased zoom transition.
	ScaleEaseDurationMs float64 `yaml:"scaleEaseDurationMs"`
	// ScaleEasing names the easing curve for zoom transitions. Must be a
	// name known to EaseByName.
	ScaleEasing string `yaml:"scaleEasing"`

	// PinchScaleSensitivity converts a change in inter-touch distance
	// (pixels) into a change in scale.
	PinchScaleSensitivity float64 `yaml:"pinchScaleSensitivity"`

	// MinScale and MaxScale bound the zoom factor. Requests outside the
	// range are clamped, never rejected.
	MinScale float64 `yaml:"minScale"`
	MaxScale float64 `yaml:"maxScale"`

	// NextScale and PreviousScale step the zoom for ZoomIn/ZoomOut and the
	// mouse wheel. Defaults double and halve; supply lookup-table steppers
	// for "nice" zoom level sequences.
	NextScale     func(scale float64) float64 `yaml:"-"`
	PreviousScale func(scale float64) float64 `yaml:"-"`
}

// DefaultConfig returns the default viewport tuning.
func DefaultConfig() Config {
	return Config{
		DecayFactor:           0.85,
		DecayDurationMs:       25,
		VelocityThreshold:     0.5,
		ScaleEaseDurationMs:   100,
		ScaleEasing:           "out-cubic",
		PinchScaleSensitivity: 0.005,
		MinScale:              0.125,
		MaxScale:              8,
		NextScale:             func(s float64) float64 { return s * 2 },
		PreviousScale:         func(s float64) float64 { return s / 2 },
	}
}

// ParseConfig unmarshals YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse config: %v", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills zero-value fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.DecayFactor == 0 {
		c.DecayFactor = def.DecayFactor
	}
	if c.DecayDurationMs == 0 {
		c.DecayDurationMs = def.DecayDurationMs
	}
	if c.VelocityThreshold == 0 {
		c.VelocityThreshold = def.VelocityThreshold
	}
	if c.ScaleEaseDurationMs == 0 {
		c.ScaleEaseDurationMs = def.ScaleEaseDurationMs
	}
	if c.ScaleEasing == "" {
		c.ScaleEasing = def.ScaleEasing
	}
	if c.PinchScaleSensitivity == 0 {
		c.PinchScaleSensitivity = def.PinchScaleSensitivity
	}
	if c.MinScale == 0 {
		c.MinScale = def.MinScale
	}
	if c.MaxScale == 0 {
		c.MaxScale = def.MaxScale
	}
	if c.NextScale == nil {
		c.NextScale = def.NextScale
	}
	if c.PreviousScale == nil {
		c.PreviousScale = def.PreviousScale
	}
	return c
}

// Validate reports the first configuration error found. All failures wrap
// ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.DecayFactor <= 0 || c.DecayFactor >= 1 {
		return fmt.Errorf("%w: decayFactor %v, must be in (0, 1)", ErrInvalidConfiguration, c.DecayFactor)
	}
	if c.DecayDurationMs <= 0 {
		return fmt.Errorf("%w: decayDurationMs %v, must be positive", ErrInvalidConfiguration, c.DecayDurationMs)
	}
	if c.VelocityThreshold < 0 {
		return fmt.Errorf("%w: velocityThreshold %v, must not be negative", ErrInvalidConfiguration, c.VelocityThreshold)
	}
	if c.ScaleEaseDurationMs <= 0 {
		return fmt.Errorf("%w: scaleEaseDurationMs %v, must be positive", ErrInvalidConfiguration, c.ScaleEaseDurationMs)
	}
	if _, err := EaseByName(c.ScaleEasing); err != nil {
		return err
	}
	if c.MinScale <= 0 {
		return fmt.Errorf("%w: minScale %v, must be positive", ErrInvalidConfiguration, c.MinScale)
	}
	if c.MaxScale < c.MinScale {
		return fmt.Errorf("%w: maxScale %v below minScale %v", ErrInvalidConfiguration, c.MaxScale, c.MinScale)
	}
	return nil
}
