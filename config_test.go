package panzoom

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DecayFactor != 0.85 {
		t.Errorf("DecayFactor = %v, want 0.85", cfg.DecayFactor)
	}
	if cfg.DecayDurationMs != 25 {
		t.Errorf("DecayDurationMs = %v, want 25", cfg.DecayDurationMs)
	}
	if cfg.VelocityThreshold != 0.5 {
		t.Errorf("VelocityThreshold = %v, want 0.5", cfg.VelocityThreshold)
	}
	if cfg.ScaleEaseDurationMs != 100 {
		t.Errorf("ScaleEaseDurationMs = %v, want 100", cfg.ScaleEaseDurationMs)
	}
	if cfg.PinchScaleSensitivity != 0.005 {
		t.Errorf("PinchScaleSensitivity = %v, want 0.005", cfg.PinchScaleSensitivity)
	}
	if cfg.MinScale != 0.125 || cfg.MaxScale != 8 {
		t.Errorf("scale bounds = [%v, %v], want [0.125, 8]", cfg.MinScale, cfg.MaxScale)
	}
	if cfg.NextScale(2) != 4 || cfg.PreviousScale(2) != 1 {
		t.Error("default scale steppers should double and halve")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte("decayFactor: 0.9\nminScale: 0.25\nscaleEasing: out-expo\n")
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.DecayFactor != 0.9 {
		t.Errorf("DecayFactor = %v, want 0.9", cfg.DecayFactor)
	}
	if cfg.MinScale != 0.25 {
		t.Errorf("MinScale = %v, want 0.25", cfg.MinScale)
	}
	if cfg.ScaleEasing != "out-expo" {
		t.Errorf("ScaleEasing = %q, want out-expo", cfg.ScaleEasing)
	}
	// Untouched fields keep their defaults.
	if cfg.MaxScale != 8 || cfg.DecayDurationMs != 25 {
		t.Error("unset fields lost their defaults")
	}
}

func TestParseConfigMalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("decayFactor: [nope"))
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative decay factor", func(c *Config) { c.DecayFactor = -1 }},
		{"decay factor one", func(c *Config) { c.DecayFactor = 1 }},
		{"negative decay duration", func(c *Config) { c.DecayDurationMs = -5 }},
		{"negative velocity threshold", func(c *Config) { c.VelocityThreshold = -1 }},
		{"negative ease duration", func(c *Config) { c.ScaleEaseDurationMs = -100 }},
		{"unknown easing", func(c *Config) { c.ScaleEasing = "wobble" }},
		{"negative min scale", func(c *Config) { c.MinScale = -0.5 }},
		{"inverted bounds", func(c *Config) { c.MaxScale = 0.01 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}
