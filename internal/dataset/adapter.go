package dataset

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/videomask/internal/config"
	"github.com/ivlev/videomask/internal/mask"
	"github.com/ivlev/videomask/internal/sampler"
)

// debugVideoLimit truncates the dataset in debug mode so exam runs touch
// only a small prefix of the corpus.
const debugVideoLimit = 100

// Item is one assembled training example: the sampled temporal references
// of a video zipped with an index-aligned mask sequence and the frame
// file names an external decoder should load.
type Item struct {
	ID           uuid.UUID
	VideoID      string
	FrameIndices sampler.FrameIndexSet
	Masks        mask.Sequence
	FrameNames   []string
}

// Adapter binds a mask generator and the temporal sampler to a video
// manifest, producing Items for the external image/tensor pipeline. It
// makes no assumption about image format or storage medium; frame names
// are handed out, never opened.
type Adapter struct {
	cfg      config.Generation
	gen      mask.Generator
	manifest Manifest
	ids      []string
}

// NewAdapter wires a manifest to the configured generator variant.
func NewAdapter(cfg config.Generation, manifest Manifest) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen, err := mask.NewGenerator(cfg.MaskVariant, mask.Options{
		Seed:          cfg.MaskSeed,
		MinRadiusFrac: cfg.MinRadiusFrac,
		MaxRadiusFrac: cfg.MaxRadiusFrac,
		MaxCoverage:   cfg.MaxCoverage,
		MaxStepFrac:   cfg.MaxStepFrac,
	})
	if err != nil {
		return nil, err
	}

	ids := manifest.VideoIDs()
	if cfg.Debug && len(ids) > debugVideoLimit {
		ids = ids[:debugVideoLimit]
	}

	return &Adapter{cfg: cfg, gen: gen, manifest: manifest, ids: ids}, nil
}

// Len returns the number of videos the adapter can produce items for.
func (a *Adapter) Len() int { return len(a.ids) }

// Item assembles one training example for the video at the given index.
func (a *Adapter) Item(index int) (*Item, error) {
	if index < 0 || index >= len(a.ids) {
		return nil, fmt.Errorf("item index %d out of range [0, %d)", index, len(a.ids))
	}
	videoID := a.ids[index]
	videoLength := a.manifest[videoID]

	indices, err := sampler.Sample(videoLength, a.cfg.SampleCount)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	masks, err := a.gen.Generate(len(indices), a.cfg.Height, a.cfg.Width)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	if len(masks) != len(indices) {
		return nil, fmt.Errorf("video %s: generator returned %d masks for %d indices",
			videoID, len(masks), len(indices))
	}
	for _, m := range masks {
		if m.Height() != a.cfg.Height || m.Width() != a.cfg.Width {
			return nil, fmt.Errorf("video %s: mask resolution %dx%d, want %dx%d",
				videoID, m.Height(), m.Width(), a.cfg.Height, a.cfg.Width)
		}
	}

	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = fmt.Sprintf(a.cfg.FramePattern, idx)
	}

	return &Item{
		ID:           uuid.New(),
		VideoID:      videoID,
		FrameIndices: indices,
		Masks:        masks,
		FrameNames:   names,
	}, nil
}

// ItemOrFirst is the loader-facing wrapper: on synthesis failure it logs
// the error and substitutes the first item, matching the training
// pipeline's tolerance for occasional bad videos. Errors on the fallback
// itself are returned.
func (a *Adapter) ItemOrFirst(index int) (*Item, error) {
	item, err := a.Item(index)
	if err == nil {
		return item, nil
	}
	log.Printf("[!] loading error at item %d: %v, substituting item 0", index, err)
	return a.Item(0)
}

// Batch assembles items for the given indices across a worker pool.
// Results are index-aligned with the request.
func (a *Adapter) Batch(ctx context.Context, indices []int, workers int) ([]*Item, error) {
	if workers < 1 {
		workers = 1
	}

	items := make([]*Item, len(indices))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for pos, index := range indices {
		pos, index := pos, index
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := a.ItemOrFirst(index)
			if err != nil {
				return err
			}
			items[pos] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
