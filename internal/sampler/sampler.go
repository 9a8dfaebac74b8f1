package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/ivlev/videomask/internal/system"
)

// ErrInvalidSampleSize reports a sample count that is non-positive or
// exceeds the video length.
var ErrInvalidSampleSize = errors.New("invalid sample size")

// FrameIndexSet is a strictly increasing sequence of frame indices
// forming one training example's temporal references.
type FrameIndexSet []int

// Contiguous reports whether the indices form a run of consecutive ints.
func (s FrameIndexSet) Contiguous() bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1]+1 {
			return false
		}
	}
	return true
}

// Sample chooses sampleCount distinct frame indices from a video of
// videoLength frames. Each call picks one of two strategies with equal
// probability:
//
//   - scattered: distinct uniform draws over the whole video, sorted,
//     exposing the model to large temporal gaps;
//   - contiguous: a sliding window at a uniform pivot, exposing it to
//     short-range coherent motion.
//
// The random source is local to the call, so concurrent loader workers
// cannot interfere with each other's draws.
func Sample(videoLength, sampleCount int) (FrameIndexSet, error) {
	if sampleCount < 1 || sampleCount > videoLength {
		return nil, fmt.Errorf("%w: count %d for video length %d",
			ErrInvalidSampleSize, sampleCount, videoLength)
	}
	rng := rand.New(rand.NewSource(system.Seed()))
	if rng.Float64() > 0.5 {
		return scattered(rng, videoLength, sampleCount), nil
	}
	return contiguous(rng, videoLength, sampleCount), nil
}

func scattered(rng *rand.Rand, videoLength, sampleCount int) FrameIndexSet {
	idx := append(FrameIndexSet(nil), rng.Perm(videoLength)[:sampleCount]...)
	sort.Ints(idx)
	return idx
}

func contiguous(rng *rand.Rand, videoLength, sampleCount int) FrameIndexSet {
	pivot := rng.Intn(videoLength - sampleCount + 1)
	idx := make(FrameIndexSet, sampleCount)
	for i := range idx {
		idx[i] = pivot + i
	}
	return idx
}
