package mask

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"math/rand"

	"golang.org/x/image/vector"

	"github.com/ivlev/videomask/internal/system"
)

// MovingShape synthesizes a sequence of masks depicting one irregular
// region drifting, rotating and slowly deforming across the frame,
// simulating a foreground object moving through the scene. Output is
// intentionally non-reproducible across calls; each call owns a fresh
// random source.
type MovingShape struct {
	// MinRadiusFrac and MaxRadiusFrac bound the shape's base radius as a
	// fraction of min(height, width).
	MinRadiusFrac float64
	MaxRadiusFrac float64

	// MaxCoverage caps the occluded fraction of any single mask.
	MaxCoverage float64

	// MaxStepFrac bounds the per-frame center displacement as a fraction
	// of min(height, width).
	MaxStepFrac float64
}

// NewMovingShape creates a moving-shape generator with default tuning.
func NewMovingShape() *MovingShape {
	return &MovingShape{
		MinRadiusFrac: 0.10,
		MaxRadiusFrac: 0.35,
		MaxCoverage:   0.5,
		MaxStepFrac:   0.05,
	}
}

// shapeState holds the moving region's geometry for one sequence. It is
// created per Generate call, mutated once per frame and discarded.
type shapeState struct {
	cx, cy     float64
	radius     float64
	baseRadius float64
	maxRadius  float64
	angles     []float64 // vertex ring offsets, ascending within one turn
	factors    []float64 // per-vertex radius perturbation
	theta      float64
	vx, vy     float64
	spin       float64
	maxStep    float64
}

// Generate returns frameCount masks of the given geometry tracing one
// shape's motion. Every mask is non-empty, stays below MaxCoverage, and
// consecutive region centers move by at most the configured step bound.
func (g *MovingShape) Generate(frameCount, height, width int) (Sequence, error) {
	if frameCount < 1 {
		return nil, fmt.Errorf("frame count must be positive, got %d", frameCount)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, height, width)
	}

	rng := rand.New(rand.NewSource(system.Seed()))
	st := g.newState(rng, height, width)

	seq := make(Sequence, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		m, err := New(height, width)
		if err != nil {
			return nil, err
		}
		st.rasterize(m)
		if m.Coverage() == 0 {
			// Degenerate geometry (tiny frames); keep the invariant.
			x := clampInt(int(st.cx), 0, width-1)
			y := clampInt(int(st.cy), 0, height-1)
			m.fillRect(image.Rect(x-1, y-1, x+2, y+2))
		}
		seq = append(seq, m)
		st.advance(rng, height, width)
	}
	return seq, nil
}

func (g *MovingShape) newState(rng *rand.Rand, height, width int) *shapeState {
	minSide := float64(height)
	if width < height {
		minSide = float64(width)
	}

	base := (g.MinRadiusFrac + rng.Float64()*(g.MaxRadiusFrac-g.MinRadiusFrac)) * minSide
	// Keep the bounding circle's area safely under the coverage cap, with
	// headroom for per-frame size breathing.
	maxRadius := 0.85 * math.Sqrt(g.MaxCoverage*float64(height)*float64(width)/math.Pi)
	if base > maxRadius {
		base = maxRadius
	}
	if base < 2 {
		base = 2
	}

	n := 8 + rng.Intn(5)
	angles := make([]float64, n)
	factors := make([]float64, n)
	gap := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angles[i] = float64(i)*gap + (rng.Float64()-0.5)*gap*0.6
		factors[i] = 0.70 + rng.Float64()*0.30
	}

	st := &shapeState{
		radius:     base,
		baseRadius: base,
		maxRadius:  maxRadius,
		angles:     angles,
		factors:    factors,
		theta:      rng.Float64() * 2 * math.Pi,
		maxStep:    g.MaxStepFrac * minSide,
	}

	st.cx = uniformWithin(rng, base, float64(width)-base, float64(width)/2)
	st.cy = uniformWithin(rng, base, float64(height)-base, float64(height)/2)

	speed := st.maxStep * (0.35 + 0.5*rng.Float64())
	heading := rng.Float64() * 2 * math.Pi
	st.vx = speed * math.Cos(heading)
	st.vy = speed * math.Sin(heading)
	st.spin = (rng.Float64() - 0.5) * 0.12

	return st
}

// advance moves the shape one frame: drift plus bounded random-walk
// jitter on velocity, spin and size, reflecting off frame margins.
func (st *shapeState) advance(rng *rand.Rand, height, width int) {
	st.cx += st.vx
	st.cy += st.vy
	st.theta += st.spin

	st.vx += (rng.Float64() - 0.5) * 0.25 * st.maxStep
	st.vy += (rng.Float64() - 0.5) * 0.25 * st.maxStep
	speed := math.Hypot(st.vx, st.vy)
	if speed > st.maxStep {
		scale := st.maxStep / speed
		st.vx *= scale
		st.vy *= scale
	}

	st.spin += (rng.Float64() - 0.5) * 0.02
	st.spin = clampFloat(st.spin, -0.10, 0.10)

	st.radius *= 1 + (rng.Float64()-0.5)*0.04
	st.radius = clampFloat(st.radius, 0.85*st.baseRadius, 1.15*st.baseRadius)
	if st.radius > st.maxRadius {
		st.radius = st.maxRadius
	}

	// Reflect the center so the shape stays substantially in frame.
	lo := st.radius * 0.6
	st.cx, st.vx = reflect(st.cx, st.vx, lo, float64(width)-lo)
	st.cy, st.vy = reflect(st.cy, st.vy, lo, float64(height)-lo)
}

// rasterize fills the current polygon into m by drawing a closed quadratic
// curve through edge midpoints with the vertices as control points, then
// thresholding the anti-aliased alpha.
func (st *shapeState) rasterize(m *Mask) {
	n := len(st.angles)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		a := st.theta + st.angles[i]
		r := st.radius * st.factors[i]
		xs[i] = st.cx + r*math.Cos(a)
		ys[i] = st.cy + r*math.Sin(a)
	}

	rast := vector.NewRasterizer(m.width, m.height)
	rast.DrawOp = draw.Src

	mid := func(i int) (float32, float32) {
		j := (i + 1) % n
		return float32((xs[i] + xs[j]) / 2), float32((ys[i] + ys[j]) / 2)
	}

	sx, sy := mid(n - 1)
	rast.MoveTo(sx, sy)
	for i := 0; i < n; i++ {
		ex, ey := mid(i)
		rast.QuadTo(float32(xs[i]), float32(ys[i]), ex, ey)
	}
	rast.ClosePath()

	dst := system.GetAlpha(image.Rect(0, 0, m.width, m.height))
	defer system.PutAlpha(dst)
	rast.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	for i, a := range dst.Pix {
		if a >= 128 {
			m.pix[i] = 1
		}
	}
}

func uniformWithin(rng *rand.Rand, lo, hi, fallback float64) float64 {
	if hi <= lo {
		return fallback
	}
	return lo + rng.Float64()*(hi-lo)
}

func reflect(pos, vel, lo, hi float64) (float64, float64) {
	if hi <= lo {
		return (lo + hi) / 2, vel
	}
	if pos < lo {
		return lo + (lo - pos), -vel
	}
	if pos > hi {
		return hi - (pos - hi), -vel
	}
	return pos, vel
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
