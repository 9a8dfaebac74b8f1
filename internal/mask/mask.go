package mask

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrInvalidGeometry reports a non-positive mask height or width.
	ErrInvalidGeometry = errors.New("invalid mask geometry")

	// ErrSeedRequired reports a fixed-region generator requested without a seed.
	ErrSeedRequired = errors.New("fixed mask generator requires a seed")
)

// Mask is a binary occlusion grid. Value 1 marks occluded pixels that the
// downstream inpainting model must reconstruct. A Mask is treated as
// immutable once returned by a generator.
type Mask struct {
	height int
	width  int
	pix    []uint8 // row-major, values 0 or 1
}

// Sequence is an ordered list of masks, index-aligned with the frame
// indices sampled for one training example.
type Sequence []*Mask

// New allocates an empty (all-zero) mask of the given geometry.
func New(height, width int) (*Mask, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, height, width)
	}
	return &Mask{
		height: height,
		width:  width,
		pix:    make([]uint8, height*width),
	}, nil
}

func (m *Mask) Height() int { return m.height }
func (m *Mask) Width() int  { return m.width }

// At returns the value (0 or 1) at pixel (x, y).
func (m *Mask) At(x, y int) uint8 {
	return m.pix[y*m.width+x]
}

func (m *Mask) set(x, y int) {
	m.pix[y*m.width+x] = 1
}

// fillRect sets every pixel inside the given rectangle, clipped to the mask.
func (m *Mask) fillRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, m.width, m.height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.pix[y*m.width : y*m.width+m.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = 1
		}
	}
}

// Coverage returns the fraction of occluded pixels, in [0, 1].
func (m *Mask) Coverage() float64 {
	count := 0
	for _, v := range m.pix {
		if v != 0 {
			count++
		}
	}
	return float64(count) / float64(len(m.pix))
}

// Centroid returns the center of mass of the occluded region.
// ok is false when the mask is empty.
func (m *Mask) Centroid() (cx, cy float64, ok bool) {
	var sumX, sumY, count float64
	for y := 0; y < m.height; y++ {
		row := m.pix[y*m.width : y*m.width+m.width]
		for x, v := range row {
			if v != 0 {
				sumX += float64(x)
				sumY += float64(y)
				count++
			}
		}
	}
	if count == 0 {
		return 0, 0, false
	}
	return sumX / count, sumY / count, true
}

// Equal reports whether two masks have identical geometry and content.
func (m *Mask) Equal(other *Mask) bool {
	if m.height != other.height || m.width != other.width {
		return false
	}
	for i, v := range m.pix {
		if v != other.pix[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	pix := make([]uint8, len(m.pix))
	copy(pix, m.pix)
	return &Mask{height: m.height, width: m.width, pix: pix}
}

// ToGray renders the mask as an 8-bit grayscale image with occluded
// pixels at 255, for preview output and external tensor assembly.
func (m *Mask) ToGray() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.At(x, y) != 0 {
				gray.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return gray
}
