package mask

import "fmt"

// Generator is the common contract of the mask synthesis strategies: one
// mask per frame, all at the requested geometry.
type Generator interface {
	Generate(frameCount, height, width int) (Sequence, error)
}

// Generator variants selectable per dataset configuration.
const (
	VariantFixed  = "fixed"
	VariantMoving = "moving"
)

// Options tunes generator construction. The zero seed counts as absent:
// the fixed variant demands an explicit seed for its reproducibility
// guarantee.
type Options struct {
	Seed          int64
	MinRadiusFrac float64
	MaxRadiusFrac float64
	MaxCoverage   float64
	MaxStepFrac   float64
}

// NewGenerator creates a generator for the named variant. An empty
// variant defaults to the moving shape.
func NewGenerator(variant string, opts Options) (Generator, error) {
	switch variant {
	case VariantMoving, "":
		g := NewMovingShape()
		if opts.MinRadiusFrac > 0 {
			g.MinRadiusFrac = opts.MinRadiusFrac
		}
		if opts.MaxRadiusFrac > 0 {
			g.MaxRadiusFrac = opts.MaxRadiusFrac
		}
		if opts.MaxCoverage > 0 {
			g.MaxCoverage = opts.MaxCoverage
		}
		if opts.MaxStepFrac > 0 {
			g.MaxStepFrac = opts.MaxStepFrac
		}
		return g, nil
	case VariantFixed:
		if opts.Seed == 0 {
			return nil, ErrSeedRequired
		}
		return NewFixedRegion(opts.Seed), nil
	default:
		return nil, fmt.Errorf("unknown mask variant: %s", variant)
	}
}
