package renderer

import "time"

// WorkerStats describes the share of a frame rendered by one worker
type WorkerStats struct {
	// The worker id.
	ID int

	// Tiles and pixels rendered, and the percentage of the frame they represent.
	Tiles        int
	Pixels       int
	FramePercent float32

	// Time spent rendering assigned tiles
	RenderTime time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int // Total number of pixels rendered
	TotalSamples int // Total number of camera samples taken

	// Individual worker stats.
	Workers []WorkerStats

	// Total render time for entire frame.
	RenderTime time.Duration
}

// AverageSamples returns the mean number of camera samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// finalize fills in the per-worker frame percentages
func (s *RenderStats) finalize() {
	if s.TotalPixels == 0 {
		return
	}
	for i := range s.Workers {
		s.Workers[i].FramePercent = 100 * float32(s.Workers[i].Pixels) / float32(s.TotalPixels)
	}
}
