package mask

import (
	"errors"
	"testing"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		variant string
		opts    Options
		wantErr error
		wantAny bool
	}{
		{variant: VariantMoving},
		{variant: ""}, // default
		{variant: VariantFixed, opts: Options{Seed: 42}},
		{variant: VariantFixed, wantErr: ErrSeedRequired},
		{variant: "ellipse", wantAny: true},
	}

	for _, tt := range tests {
		name := tt.variant
		if name == "" {
			name = "default"
		}
		t.Run(name, func(t *testing.T) {
			gen, err := NewGenerator(tt.variant, tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if tt.wantAny {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if gen == nil {
				t.Fatal("Expected generator, got nil")
			}
		})
	}
}

func TestNewGeneratorAppliesTuning(t *testing.T) {
	gen, err := NewGenerator(VariantMoving, Options{
		MinRadiusFrac: 0.2,
		MaxRadiusFrac: 0.3,
		MaxCoverage:   0.4,
		MaxStepFrac:   0.02,
	})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	moving, ok := gen.(*MovingShape)
	if !ok {
		t.Fatalf("Expected *MovingShape, got %T", gen)
	}
	if moving.MinRadiusFrac != 0.2 || moving.MaxRadiusFrac != 0.3 {
		t.Errorf("Radius tuning not applied: [%f, %f]", moving.MinRadiusFrac, moving.MaxRadiusFrac)
	}
	if moving.MaxCoverage != 0.4 || moving.MaxStepFrac != 0.02 {
		t.Errorf("Coverage/step tuning not applied: %f, %f", moving.MaxCoverage, moving.MaxStepFrac)
	}
}
