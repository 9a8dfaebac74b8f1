package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Generation describes one dataset variant's mask and sampling setup.
type Generation struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	SampleCount int    `yaml:"sample_count"`
	MaskVariant string `yaml:"mask_variant"` // "fixed" or "moving"
	MaskSeed    int64  `yaml:"mask_seed"`    // fixed variant only

	MinRadiusFrac float64 `yaml:"min_radius_frac"`
	MaxRadiusFrac float64 `yaml:"max_radius_frac"`
	MaxCoverage   float64 `yaml:"max_coverage"`
	MaxStepFrac   float64 `yaml:"max_step_frac"`

	FramePattern string `yaml:"frame_pattern"` // frame file name format, e.g. %05d.jpg
	Workers      int    `yaml:"workers"`
	Debug        bool   `yaml:"debug"`
}

// Default returns the standard training setup.
func Default() Generation {
	return Generation{
		Width:         432,
		Height:        240,
		SampleCount:   5,
		MaskVariant:   "moving",
		MinRadiusFrac: 0.10,
		MaxRadiusFrac: 0.35,
		MaxCoverage:   0.5,
		MaxStepFrac:   0.05,
		FramePattern:  "%05d.jpg",
		Workers:       runtime.NumCPU(),
	}
}

// Load reads a yaml config file, filling unset fields from defaults.
func Load(path string) (*Generation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.FramePattern == "" {
		cfg.FramePattern = "%05d.jpg"
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Generation) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the cross-field constraints the engine relies on.
func (c *Generation) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("frame geometry must be positive, got %dx%d", c.Height, c.Width)
	}
	if c.SampleCount < 1 {
		return fmt.Errorf("sample_count must be positive, got %d", c.SampleCount)
	}
	if c.MinRadiusFrac < 0 || c.MaxRadiusFrac > 1 || c.MinRadiusFrac > c.MaxRadiusFrac {
		return fmt.Errorf("radius fractions out of order: [%.2f, %.2f]", c.MinRadiusFrac, c.MaxRadiusFrac)
	}
	if c.MaxCoverage <= 0 || c.MaxCoverage > 1 {
		return fmt.Errorf("max_coverage must be in (0, 1], got %.2f", c.MaxCoverage)
	}
	return nil
}
