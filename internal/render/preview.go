package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/ivlev/videomask/internal/mask"
)

// WriteSequence renders a mask sequence as numbered PNG frames for visual
// inspection of generator output. scale upsamples with nearest-neighbor
// so individual mask pixels stay crisp; values below 1 mean no scaling.
func WriteSequence(dir string, seq mask.Sequence, scale int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preview dir: %w", err)
	}

	for i, m := range seq {
		img := frameImage(m, scale)
		path := filepath.Join(dir, fmt.Sprintf("mask_%05d.png", i))
		if err := writePNG(path, img); err != nil {
			return err
		}
	}
	return nil
}

func frameImage(m *mask.Mask, scale int) image.Image {
	gray := m.ToGray()
	if scale <= 1 {
		return gray
	}
	dst := image.NewGray(image.Rect(0, 0, m.Width()*scale, m.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), gray, gray.Bounds(), draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
