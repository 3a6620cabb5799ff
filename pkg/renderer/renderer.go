package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/integrator"
	"github.com/df07/go-pathtree/pkg/log"
	"golang.org/x/sync/errgroup"
)

var logger = log.New("renderer")

// Options controls a render
type Options struct {
	Width   int
	Height  int
	Samples int   // Primary rays per pixel
	Workers int   // Row blocks rendered in parallel; 0 uses every CPU
	Seed    int64 // Block i samples with Seed+i
}

// Renderer traces a frame in parallel row blocks
type Renderer struct {
	world   integrator.World
	config  integrator.Config
	camera  *Camera
	frame   *Frame
	options Options
}

// New creates a renderer. The world must be fully built and is not modified.
func New(world integrator.World, camera *Camera, config integrator.Config, options Options) (*Renderer, error) {
	if options.Samples <= 0 {
		return nil, fmt.Errorf("renderer: samples must be positive, got %d", options.Samples)
	}
	if options.Workers < 0 {
		return nil, fmt.Errorf("%w: %d workers", ErrNoWorkers, options.Workers)
	}
	if options.Workers == 0 {
		options.Workers = runtime.NumCPU()
	}

	frame, err := NewFrame(options.Width, options.Height)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		world:   world,
		config:  config,
		camera:  camera,
		frame:   frame,
		options: options,
	}, nil
}

// Frame returns the frame buffer being rendered into
func (r *Renderer) Frame() *Frame {
	return r.frame
}

// Render traces the whole frame. Each block writes only its own rows. When
// ctx is cancelled the render stops between rows and returns ErrInterrupted.
func (r *Renderer) Render(ctx context.Context) (Stats, error) {
	blocks, err := Schedule(r.options.Height, r.options.Workers)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Blocks: make([]BlockStats, len(blocks))}
	var mu sync.Mutex
	start := time.Now()

	logger.Infof("rendering %dx%d at %d spp in %d blocks", r.options.Width, r.options.Height, r.options.Samples, len(blocks))

	g, ctx := errgroup.WithContext(ctx)
	for _, block := range blocks {
		block := block // per-iteration copy (go 1.21 loop semantics)
		worker := &blockWorker{
			block:   block,
			tracer:  integrator.NewPathTree(r.world, r.config),
			sampler: core.NewSeededSampler(r.options.Seed + int64(block.Index)),
			camera:  r.camera,
			frame:   r.frame,
			samples: r.options.Samples,
		}

		g.Go(func() error {
			blockStats, err := worker.run(ctx)

			mu.Lock()
			stats.add(blockStats)
			mu.Unlock()

			if err != nil {
				return err
			}
			logger.Debugf("block %d (rows %d-%d): %d rays, %d aborted, %d escaped in %s",
				block.Index, block.Start, block.End-1, blockStats.Rays,
				blockStats.Trace.Aborted, blockStats.Trace.Escaped, blockStats.Duration)
			return nil
		})
	}

	err = g.Wait()
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, err
	}
	return stats, nil
}
