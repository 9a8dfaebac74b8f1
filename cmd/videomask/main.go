package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"

	"github.com/ivlev/videomask/internal/config"
	"github.com/ivlev/videomask/internal/dataset"
	"github.com/ivlev/videomask/internal/mask"
	"github.com/ivlev/videomask/internal/render"
	"github.com/ivlev/videomask/internal/sampler"
	"github.com/ivlev/videomask/internal/system"
)

func main() {
	app := &cli.Command{
		Name:  "videomask",
		Usage: "Synthesize occlusion masks and temporal references for video inpainting training data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a yaml generation config (defaults used when empty)",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "Print process resource usage after the run",
			},
		},
		Commands: []*cli.Command{
			previewCommand(),
			batchCommand(),
			sampleCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(cmd *cli.Command) (config.Generation, error) {
	path := cmd.String("config")
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Generation{}, err
	}
	return *cfg, nil
}

func maybePrintStats(cmd *cli.Command) {
	if !cmd.Bool("stats") {
		return
	}
	snap, err := system.Collect()
	if err != nil {
		log.Printf("[!] stats unavailable: %v", err)
		return
	}
	fmt.Printf("[*] %s\n", snap)
}

func previewCommand() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Generate one mask sequence and write it as PNG frames",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output directory for the PNG frames",
				Value:   "preview",
			},
			&cli.IntFlag{
				Name:  "frames",
				Usage: "Number of masks to synthesize",
				Value: 40,
			},
			&cli.IntFlag{
				Name:  "upscale",
				Usage: "Nearest-neighbor upscale factor for the previews",
				Value: 1,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			frames := cmd.Int("frames")
			if frames < 1 {
				return cli.Exit("frames must be greater than zero", 2)
			}

			gen, err := mask.NewGenerator(cfg.MaskVariant, mask.Options{
				Seed:          cfg.MaskSeed,
				MinRadiusFrac: cfg.MinRadiusFrac,
				MaxRadiusFrac: cfg.MaxRadiusFrac,
				MaxCoverage:   cfg.MaxCoverage,
				MaxStepFrac:   cfg.MaxStepFrac,
			})
			if err != nil {
				return err
			}

			start := time.Now()
			seq, err := gen.Generate(int(frames), cfg.Height, cfg.Width)
			if err != nil {
				return err
			}
			if err := render.WriteSequence(cmd.String("out"), seq, int(cmd.Int("upscale"))); err != nil {
				return err
			}

			fmt.Printf("[*] Wrote %d masks (%dx%d, variant %s) to %s in %.2fs\n",
				len(seq), cfg.Height, cfg.Width, cfg.MaskVariant,
				cmd.String("out"), time.Since(start).Seconds())
			maybePrintStats(cmd)
			return nil
		},
	}
}

type itemSummary struct {
	ID           string   `json:"id"`
	VideoID      string   `json:"video_id"`
	Indices      []int    `json:"indices"`
	FrameNames   []string `json:"frame_names"`
	MeanCoverage float64  `json:"mean_coverage"`
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Assemble training items for every video in a manifest and print summaries as JSON lines",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "manifest",
				Aliases:  []string{"m"},
				Usage:    "Path to the json manifest (video id -> frame count)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			manifest, err := dataset.LoadManifest(cmd.String("manifest"))
			if err != nil {
				return err
			}
			adapter, err := dataset.NewAdapter(cfg, manifest)
			if err != nil {
				return err
			}

			indices := make([]int, adapter.Len())
			for i := range indices {
				indices[i] = i
			}

			start := time.Now()
			items, err := adapter.Batch(ctx, indices, cfg.Workers)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			for _, item := range items {
				sum := itemSummary{
					ID:         item.ID.String(),
					VideoID:    item.VideoID,
					Indices:    item.FrameIndices,
					FrameNames: item.FrameNames,
				}
				for _, m := range item.Masks {
					sum.MeanCoverage += m.Coverage()
				}
				sum.MeanCoverage /= float64(len(item.Masks))
				if err := enc.Encode(sum); err != nil {
					return err
				}
			}

			fmt.Fprintf(os.Stderr, "[*] Assembled %d items with %d workers in %.2fs\n",
				len(items), cfg.Workers, time.Since(start).Seconds())
			maybePrintStats(cmd)
			return nil
		},
	}
}

func sampleCommand() *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "Print one set of sampled frame indices",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "video-length",
				Usage: "Total number of frames in the video",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of reference frames to sample",
				Value: 5,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			indices, err := sampler.Sample(int(cmd.Int("video-length")), int(cmd.Int("count")))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			mode := "scattered"
			if indices.Contiguous() {
				mode = "contiguous"
			}
			fmt.Printf("%v (%s)\n", []int(indices), mode)
			return nil
		},
	}
}
