package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/output"
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
	"github.com/df07/go-motionblur-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	destination := ctx.String("out")
	if _, err := output.EncoderFor(destination); err != nil {
		return err
	}

	seed := ctx.Int64("seed")
	sc, err := scene.Create(ctx.String("scene"), seed)
	if err != nil {
		return err
	}
	applySamplingFlags(ctx, sc)

	logSceneSummary(ctx.String("scene"), sc)

	var (
		frame *renderer.Frame
		stats renderer.RenderStats
	)
	if ctx.Bool("single-threaded") {
		frame, stats, err = renderSingleThreaded(sc, seed)
	} else {
		frame, stats, err = renderTiles(sc, ctx.Int("workers"), ctx.Int("tile-size"), seed)
	}
	if err != nil {
		return err
	}

	displayFrameStats(stats)

	if err := output.Save(destination, frame, ctx.App.Writer); err != nil {
		return fmt.Errorf("writing %s: %w", destination, err)
	}
	if destination != output.Stdout {
		logger.Noticef("frame saved to %s", destination)
	}
	return nil
}

// applySamplingFlags overrides the scene's sampling settings with any
// non-zero command line values. The height always follows the camera aspect ratio.
func applySamplingFlags(ctx *cli.Context, sc *scene.Scene) {
	if width := ctx.Int("width"); width > 0 {
		sc.SamplingConfig.Width = width
	}
	sc.SamplingConfig.Height = renderer.ImageHeight(sc.SamplingConfig.Width, sc.CameraConfig.AspectRatio)

	if spp := ctx.Int("spp"); spp > 0 {
		sc.SamplingConfig.SamplesPerPixel = spp
	}
	if ctx.IsSet("depth") {
		sc.SamplingConfig.MaxDepth = ctx.Int("depth")
	}
}

func logSceneSummary(name string, sc *scene.Scene) {
	logger.Infof("scene %q: %d entities", name, sc.World.Len())
	if box, ok := sc.Bounds(); ok {
		logger.Debugf("scene bounds min %v max %v", box.Min, box.Max)
	}
}

func renderTiles(sc *scene.Scene, workers, tileSize int, seed int64) (*renderer.Frame, renderer.RenderStats, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := renderer.RenderOptions{
		NumWorkers: workers,
		TileSize:   tileSize,
		Seed:       seed,
	}
	return renderer.Render(ctx, sc, opts, logger)
}

func renderSingleThreaded(sc *scene.Scene, seed int64) (*renderer.Frame, renderer.RenderStats, error) {
	start := time.Now()
	frame, err := renderer.NewRaytracer(sc, core.NewSeededSampler(seed), logger).RenderPass()
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	config := sc.GetSamplingConfig()
	pixels := config.Width * config.Height
	elapsed := time.Since(start)
	return frame, renderer.RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * config.SamplesPerPixel,
		Workers: []renderer.WorkerStats{
			{ID: 0, Tiles: 1, Pixels: pixels, FramePercent: 100, RenderTime: elapsed},
		},
		RenderTime: elapsed,
	}, nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Tiles),
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", stats.TotalPixels), "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics (%.0f samples/pixel)\n%s", stats.AverageSamples(), buf.String())
}
