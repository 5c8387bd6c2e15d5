// Package renderer drives the parallel accumulation of path-traced samples
// into a frame buffer.
package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/example/go-ray-tracer/pkg/core"
	"github.com/example/go-ray-tracer/pkg/integrator"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int         // Image width in pixels
	Height          int         // Image height in pixels
	SamplesPerPixel int         // Number of rays per pixel
	MaxDepth        int         // Maximum ray bounce depth
	Seed            int64       // Reproducibility seed for all random draws
	NumWorkers      int         // Number of parallel workers (0 = CPU count)
	Logger          core.Logger // Progress output (nil = silent)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Render traces the scene through the camera and blocks until every pixel
// has accumulated the configured number of samples.
//
// The image rows are split into contiguous bands, one per worker; each
// worker owns its band's pixels exclusively, so the frame buffer needs no
// locking. Each row is sampled with a generator seeded from (Seed, row),
// which makes the result deterministic and independent of the worker count.
func Render(scene core.Scene, camera *Camera, config RenderConfig) (*FrameBuffer, error) {
	if scene == nil || scene.Root() == nil {
		return nil, fmt.Errorf("renderer: scene has no geometry")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid image size %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("renderer: samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return nil, fmt.Errorf("renderer: max depth must be positive, got %d", config.MaxDepth)
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > config.Height {
		numWorkers = config.Height
	}

	fb := NewFrameBuffer(config.Width, config.Height)
	tracer := integrator.NewPathTracer(config.MaxDepth)

	var rowsDone atomic.Int64

	// The scene, camera, and noise tables are fully built by now and only
	// read below; the group's Wait is the join barrier before fb is handed
	// back to the caller.
	var group errgroup.Group
	rowsPerBand := (config.Height + numWorkers - 1) / numWorkers

	for band := 0; band < numWorkers; band++ {
		startRow := band * rowsPerBand
		endRow := min(startRow+rowsPerBand, config.Height)

		group.Go(func() error {
			for y := startRow; y < endRow; y++ {
				renderRow(fb, scene, camera, tracer, config, y)

				done := rowsDone.Add(1)
				if config.Logger != nil && done%50 == 0 {
					config.Logger.Printf("rendered %d/%d rows\n", done, config.Height)
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return fb, nil
}

// renderRow accumulates all samples for one image row. Seeding per row keeps
// the output identical no matter how rows are assigned to workers.
func renderRow(fb *FrameBuffer, scene core.Scene, camera *Camera, tracer *integrator.PathTracer, config RenderConfig, y int) {
	random := rand.New(rand.NewSource(config.Seed + int64(y)))

	for x := 0; x < config.Width; x++ {
		for sample := 0; sample < config.SamplesPerPixel; sample++ {
			s := (float64(x) + random.Float64()) / float64(config.Width-1)
			t := (float64(config.Height-1-y) + random.Float64()) / float64(config.Height-1)

			ray := camera.GetRay(s, t, random)
			color := tracer.RayColor(ray, scene, random, config.MaxDepth)

			fb.AddSample(x, y, color)
		}
	}
}

// StdoutLogger implements core.Logger by writing to standard output
type StdoutLogger struct{}

// Printf formats and prints a progress message
func (StdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
