package mask

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestNewMaskGeometry(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		wantErr       bool
	}{
		{"valid", 240, 432, false},
		{"single pixel", 1, 1, false},
		{"zero height", 0, 100, true},
		{"zero width", 100, 0, true},
		{"negative", -5, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.height, tt.width)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Errorf("Expected ErrInvalidGeometry, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if m.Height() != tt.height || m.Width() != tt.width {
				t.Errorf("Geometry mismatch: %dx%d", m.Height(), m.Width())
			}
			if m.Coverage() != 0 {
				t.Errorf("Fresh mask should be empty, coverage %f", m.Coverage())
			}
		})
	}
}

func TestMaskMetrics(t *testing.T) {
	m, err := New(100, 100)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// 20x20 square centered at (29.5, 49.5)
	m.fillRect(image.Rect(20, 40, 40, 60))

	wantCoverage := 400.0 / 10000.0
	if got := m.Coverage(); math.Abs(got-wantCoverage) > 1e-9 {
		t.Errorf("Coverage = %f, want %f", got, wantCoverage)
	}

	cx, cy, ok := m.Centroid()
	if !ok {
		t.Fatal("Centroid reported empty mask")
	}
	if math.Abs(cx-29.5) > 1e-9 || math.Abs(cy-49.5) > 1e-9 {
		t.Errorf("Centroid = (%f, %f), want (29.5, 49.5)", cx, cy)
	}

	if _, _, ok := mustMask(t, 10, 10).Centroid(); ok {
		t.Error("Empty mask centroid should report ok=false")
	}
}

func TestMaskCloneIndependent(t *testing.T) {
	m := mustMask(t, 10, 10)
	m.fillRect(image.Rect(0, 0, 2, 2))

	clone := m.Clone()
	if !m.Equal(clone) {
		t.Fatal("Clone differs from original")
	}

	clone.set(9, 9)
	if m.At(9, 9) != 0 {
		t.Error("Mutating clone affected original")
	}
}

func TestMaskToGray(t *testing.T) {
	m := mustMask(t, 8, 8)
	m.fillRect(image.Rect(2, 2, 4, 4))

	gray := m.ToGray()
	if gray.GrayAt(2, 2).Y != 255 {
		t.Error("Occluded pixel should render as 255")
	}
	if gray.GrayAt(0, 0).Y != 0 {
		t.Error("Clear pixel should render as 0")
	}
}

func mustMask(t *testing.T, h, w int) *Mask {
	t.Helper()
	m, err := New(h, w)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}
