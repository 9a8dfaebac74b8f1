package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	content := "width: 320\nheight: 180\nsample_count: 8\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Width != 320 || cfg.Height != 180 || cfg.SampleCount != 8 {
		t.Errorf("Explicit fields not honored: %+v", cfg)
	}
	if cfg.MaskVariant != "moving" {
		t.Errorf("MaskVariant default = %s, want moving", cfg.MaskVariant)
	}
	if cfg.MaxCoverage != 0.5 {
		t.Errorf("MaxCoverage default = %f, want 0.5", cfg.MaxCoverage)
	}
	if cfg.FramePattern != "%05d.jpg" {
		t.Errorf("FramePattern default = %s", cfg.FramePattern)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers default = %d", cfg.Workers)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")

	cfg := Default()
	cfg.MaskVariant = "fixed"
	cfg.MaskSeed = 42
	cfg.SampleCount = 5

	if err := Save(path, &cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.MaskVariant != "fixed" || loaded.MaskSeed != 42 || loaded.SampleCount != 5 {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Generation)
		wantErr bool
	}{
		{"defaults", func(c *Generation) {}, false},
		{"zero width", func(c *Generation) { c.Width = 0 }, true},
		{"negative height", func(c *Generation) { c.Height = -240 }, true},
		{"zero sample count", func(c *Generation) { c.SampleCount = 0 }, true},
		{"radius order", func(c *Generation) { c.MinRadiusFrac = 0.5; c.MaxRadiusFrac = 0.2 }, true},
		{"coverage above one", func(c *Generation) { c.MaxCoverage = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
