package mask

import (
	"errors"
	"testing"
)

func TestFixedRegionDeterminism(t *testing.T) {
	gen := NewFixedRegion(42)

	first, err := gen.Generate(5, 256, 256)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := gen.Generate(5, 256, 256)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("Expected 5 masks, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("Mask %d differs between identically seeded calls", i)
		}
	}
}

func TestFixedRegionStaticAcrossFrames(t *testing.T) {
	gen := NewFixedRegion(7)
	seq, err := gen.Generate(8, 120, 160)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i := 1; i < len(seq); i++ {
		if !seq[i].Equal(seq[0]) {
			t.Errorf("Mask %d differs from mask 0; occluder should be static", i)
		}
	}

	cov := seq[0].Coverage()
	if cov <= 0 {
		t.Error("Fixed mask is empty")
	}
	t.Logf("Seed 7 coverage: %.4f", cov)
}

func TestFixedRegionSeedsDiffer(t *testing.T) {
	a, err := NewFixedRegion(1).Generate(1, 256, 256)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := NewFixedRegion(2).Generate(1, 256, 256)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if a[0].Equal(b[0]) {
		t.Error("Seeds 1 and 2 produced identical masks")
	}
}

func TestFixedRegionInvalidArgs(t *testing.T) {
	gen := NewFixedRegion(3)

	if _, err := gen.Generate(0, 100, 100); err == nil {
		t.Error("Expected error for zero count")
	}
	if _, err := gen.Generate(3, 0, 100); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry, got %v", err)
	}
}
