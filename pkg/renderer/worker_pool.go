package renderer

import (
	"context"
	"time"

	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/integrator"
)

// blockWorker renders one row block with its own tracer and sampler
type blockWorker struct {
	block   Block
	tracer  integrator.Integrator
	sampler core.Sampler
	camera  *Camera
	frame   *Frame
	samples int
}

// run traces every pixel of the block, checking for cancellation between rows
func (w *blockWorker) run(ctx context.Context) (BlockStats, error) {
	stats := BlockStats{Block: w.block}
	start := time.Now()
	weight := 1.0 / float64(w.samples)

	for j := w.block.Start; j < w.block.End; j++ {
		select {
		case <-ctx.Done():
			stats.Duration = time.Since(start)
			return stats, ErrInterrupted
		default:
		}

		for i := 0; i < w.frame.Width; i++ {
			sum := core.Black
			for s := 0; s < w.samples; s++ {
				trace := w.tracer.TraceRay(w.camera.Ray(i, j, w.sampler), w.sampler)
				sum = sum.Add(trace.Root.Color)
				stats.Trace.Add(trace.Stats)
			}
			w.frame.Set(i, j, sum.Multiply(weight))
			stats.Rays += w.samples
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
