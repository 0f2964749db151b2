// Package render drives a parallel scanline render: a worker pool
// samples each row independently, results are assembled back into
// top-to-bottom scanline order, and the image is gamma-tonemapped
// and written out as a PPM file.
package render

import (
	"math/rand"
	"sync"
	"time"

	"github.com/kjhsato/pathtrace/pkg/camera"
	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/hitable"
	"github.com/kjhsato/pathtrace/pkg/integrator"
)

// Logger is the minimal interface the renderer needs for progress
// reporting, small enough that tests can inject a no-op.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Scene bundles everything the renderer needs to trace an image.
type Scene struct {
	World  hitable.Hitable
	Camera *camera.Camera
}

// Options configures a render.
type Options struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Background      core.Colour
	Workers         int
	Seed            int64
}

// Stats reports summary timing for a completed render.
type Stats struct {
	Width, Height   int
	SamplesPerPixel int
	Elapsed         time.Duration
}

// SamplesPerSecond returns the render's throughput.
func (s Stats) SamplesPerSecond() float64 {
	total := float64(s.Width) * float64(s.Height) * float64(s.SamplesPerPixel)
	seconds := s.Elapsed.Seconds()
	if seconds == 0 {
		return 0
	}
	return total / seconds
}

type rowResult struct {
	row    int
	pixels []core.Colour
}

// Render runs the parallel scanline render and returns the image as
// a slice of scanlines ordered top row (j = Height-1) first, each
// scanline ordered left to right, plus the run's Stats. Each worker
// owns its own *rand.Rand, seeded from opts.Seed XORed with the row
// index, so the render is reproducible under a fixed seed (property
// 10) without any worker sharing RNG state.
func Render(scene Scene, opts Options, logger Logger) ([][]core.Colour, Stats) {
	start := time.Now()

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	rows := make(chan int, opts.Height)
	for j := opts.Height - 1; j >= 0; j-- {
		rows <- j
	}
	close(rows)

	results := make([][]core.Colour, opts.Height)

	var wg sync.WaitGroup
	var mu sync.Mutex
	completed := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				random := rand.New(rand.NewSource(opts.Seed ^ int64(row)))
				pixels := renderRow(row, scene, opts, random)

				mu.Lock()
				results[row] = pixels
				completed++
				if logger != nil {
					logger.Printf("rendered scanline %d (%d/%d)", row, completed, opts.Height)
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	// Reassemble top-to-bottom (j descending) regardless of completion order.
	ordered := make([][]core.Colour, opts.Height)
	for idx, j := 0, opts.Height-1; j >= 0; idx, j = idx+1, j-1 {
		ordered[idx] = results[j]
	}

	stats := Stats{
		Width:           opts.Width,
		Height:          opts.Height,
		SamplesPerPixel: opts.SamplesPerPixel,
		Elapsed:         time.Since(start),
	}
	return ordered, stats
}

func renderRow(j int, scene Scene, opts Options, random *rand.Rand) []core.Colour {
	pixels := make([]core.Colour, opts.Width)
	cfg := integrator.Config{
		Width:           opts.Width,
		Height:          opts.Height,
		SamplesPerPixel: opts.SamplesPerPixel,
		MaxDepth:        opts.MaxDepth,
		Background:      opts.Background,
	}
	for i := 0; i < opts.Width; i++ {
		pixels[i] = integrator.PixelColour(i, j, cfg, scene.Camera.GetRay, scene.World, random)
	}
	return pixels
}
