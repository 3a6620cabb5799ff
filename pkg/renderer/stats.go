package renderer

import (
	"time"

	"github.com/df07/go-pathtree/pkg/integrator"
)

// BlockStats describes the work done on one row block
type BlockStats struct {
	Block    Block
	Rays     int // Primary rays traced
	Trace    integrator.TraceStats
	Duration time.Duration
}

// RaysPerSecond returns the primary ray throughput of the block
func (s BlockStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Rays) / s.Duration.Seconds()
}

// Stats collects the statistics of a whole render
type Stats struct {
	Blocks   []BlockStats
	Total    integrator.TraceStats
	Rays     int
	Duration time.Duration
}

func (s *Stats) add(block BlockStats) {
	s.Blocks[block.Block.Index] = block
	s.Rays += block.Rays
	s.Total.Add(block.Trace)
}
