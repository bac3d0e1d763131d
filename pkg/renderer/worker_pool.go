package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	renderer   *TileRenderer
	frame      *Frame
	numWorkers int

	// Called with the number of tiles still to finish after each tile completes.
	// Calls are serialized.
	progress   func(remaining int)
	progressMu sync.Mutex
	remaining  int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *TileRenderer, frame *Frame, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:   renderer,
		frame:      frame,
		numWorkers: numWorkers,
	}
}

// SetProgress registers a callback invoked after each completed tile
func (wp *WorkerPool) SetProgress(progress func(remaining int)) {
	wp.progress = progress
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Render distributes tiles across the workers and blocks until every tile is
// rendered, a worker fails or ctx is cancelled. Tiles never overlap, so workers
// write straight into the shared frame. A panic inside a worker is recovered
// and returned as an error.
func (wp *WorkerPool) Render(ctx context.Context, tiles []*Tile) ([]WorkerStats, error) {
	wp.remaining = len(tiles)
	stats := make([]WorkerStats, wp.numWorkers)

	g, gctx := errgroup.WithContext(ctx)
	tasks := make(chan *Tile)

	g.Go(func() error {
		defer close(tasks)
		for _, tile := range tiles {
			select {
			case tasks <- tile:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	for id := 0; id < wp.numWorkers; id++ {
		id := id
		stats[id].ID = id
		g.Go(func() error {
			return wp.runWorker(gctx, tasks, &stats[id])
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return stats, nil
}

// runWorker is the main worker loop
func (wp *WorkerPool) runWorker(ctx context.Context, tasks <-chan *Tile, stats *WorkerStats) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("worker %d: %w", stats.ID, rerr)
			} else {
				err = fmt.Errorf("worker %d: %v", stats.ID, r)
			}
		}
	}()

	for tile := range tasks {
		if ctx.Err() != nil {
			return nil
		}

		start := time.Now()
		stats.Pixels += wp.renderer.RenderTile(tile, wp.frame)
		stats.Tiles++
		stats.RenderTime += time.Since(start)

		wp.tileDone()
	}
	return nil
}

func (wp *WorkerPool) tileDone() {
	wp.progressMu.Lock()
	defer wp.progressMu.Unlock()

	wp.remaining--
	if wp.progress != nil {
		wp.progress(wp.remaining)
	}
}
