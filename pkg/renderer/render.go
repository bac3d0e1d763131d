package renderer

import (
	"context"
	"time"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// RenderOptions control how a frame is split across workers
type RenderOptions struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	TileSize   int   // Size of each square tile in pixels
	Seed       int64 // Base seed; tile n draws from Seed+n

	// Optional; receives the number of tiles still to render after each tile completes
	Progress func(remaining int)
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		NumWorkers: 0,
		TileSize:   32,
		Seed:       42,
	}
}

// Render renders the scene in parallel tiles and returns the finished frame.
// For a given seed and tile size the output does not depend on the number of
// workers or the order tiles complete in.
func Render(ctx context.Context, scene Scene, options RenderOptions, logger core.Logger) (*Frame, RenderStats, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	config := scene.GetSamplingConfig()
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	hittable := scene.GetWorld()
	if hittable == nil {
		return nil, RenderStats{}, ErrNoWorld
	}
	if options.TileSize <= 0 {
		options.TileSize = DefaultRenderOptions().TileSize
	}

	frame := NewFrame(config.Width, config.Height)
	tiles := NewTileGrid(config.Width, config.Height, options.TileSize, options.Seed)
	camera := NewCamera(scene.GetCameraConfig())

	pool := NewWorkerPool(NewTileRenderer(camera, hittable, config), frame, options.NumWorkers)
	pool.SetProgress(func(remaining int) {
		logger.Infof("Tiles remaining: %d", remaining)
		if options.Progress != nil {
			options.Progress(remaining)
		}
	})

	logger.Noticef("rendering %dx%d at %d spp, max depth %d (%d tiles, %d workers)",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, len(tiles), pool.GetNumWorkers())

	start := time.Now()
	workerStats, err := pool.Render(ctx, tiles)
	stats := RenderStats{
		TotalPixels:  config.Width * config.Height,
		TotalSamples: config.Width * config.Height * config.SamplesPerPixel,
		Workers:      workerStats,
		RenderTime:   time.Since(start),
	}
	if err != nil {
		return nil, stats, err
	}
	stats.finalize()

	logger.Noticef("frame rendered in %d ms", stats.RenderTime.Nanoseconds()/1e6)
	return frame, stats, nil
}
