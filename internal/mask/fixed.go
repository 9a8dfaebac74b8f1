package mask

import (
	"fmt"
	"image"
	"math/rand"
)

// FixedRegion synthesizes a static rectangular occluder held constant
// across all frames of a sequence. It is the only generator with a
// reproducibility guarantee: identical (count, height, width, seed) yield
// bit-identical sequences, used to probe model behavior under a known
// repeatable occlusion.
type FixedRegion struct {
	Seed int64

	// MinExtent and MaxExtent bound the rectangle's side length as a
	// fraction of the corresponding frame dimension.
	MinExtent float64
	MaxExtent float64
}

// NewFixedRegion creates a seeded fixed-rectangle generator with default
// extent bounds.
func NewFixedRegion(seed int64) *FixedRegion {
	return &FixedRegion{
		Seed:      seed,
		MinExtent: 0.15,
		MaxExtent: 0.40,
	}
}

// Generate returns count identical rectangular masks of the given
// geometry. The rectangle's position and extent derive solely from the
// generator's seed via a call-local random source, so process-wide random
// state never perturbs the output.
func (g *FixedRegion) Generate(count, height, width int) (Sequence, error) {
	if count < 1 {
		return nil, fmt.Errorf("frame count must be positive, got %d", count)
	}

	base, err := New(height, width)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(g.Seed))

	rectW := spanIn(rng, g.MinExtent, g.MaxExtent, width)
	rectH := spanIn(rng, g.MinExtent, g.MaxExtent, height)
	x0 := rng.Intn(width - rectW + 1)
	y0 := rng.Intn(height - rectH + 1)
	base.fillRect(image.Rect(x0, y0, x0+rectW, y0+rectH))

	seq := make(Sequence, count)
	seq[0] = base
	for i := 1; i < count; i++ {
		seq[i] = base.Clone()
	}
	return seq, nil
}

// spanIn draws a side length in [lo*dim, hi*dim], at least one pixel and
// never wider than the frame.
func spanIn(rng *rand.Rand, lo, hi float64, dim int) int {
	span := int((lo + rng.Float64()*(hi-lo)) * float64(dim))
	if span < 1 {
		span = 1
	}
	if span > dim {
		span = dim
	}
	return span
}
