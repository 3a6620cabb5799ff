package renderer

import (
	"testing"
	"time"

	"github.com/df07/go-pathtree/pkg/integrator"
)

func TestBlockStats_RaysPerSecond(t *testing.T) {
	tests := []struct {
		name     string
		stats    BlockStats
		expected float64
	}{
		{"two seconds", BlockStats{Rays: 1000, Duration: 2 * time.Second}, 500},
		{"no duration", BlockStats{Rays: 1000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.RaysPerSecond(); got != tt.expected {
				t.Errorf("Expected %f rays/s, got %f", tt.expected, got)
			}
		})
	}
}

func TestStats_Add(t *testing.T) {
	stats := Stats{Blocks: make([]BlockStats, 2)}

	stats.add(BlockStats{Block: Block{Index: 1}, Rays: 10, Trace: integrator.TraceStats{Traces: 10, PeakLive: 5}})
	stats.add(BlockStats{Block: Block{Index: 0}, Rays: 4, Trace: integrator.TraceStats{Traces: 4, PeakLive: 7}})

	if stats.Rays != 14 || stats.Total.Traces != 14 {
		t.Errorf("Expected 14 rays and traces, got %d and %d", stats.Rays, stats.Total.Traces)
	}
	if stats.Total.PeakLive != 7 {
		t.Errorf("Expected peak live nodes 7, got %d", stats.Total.PeakLive)
	}
	if stats.Blocks[1].Rays != 10 || stats.Blocks[0].Rays != 4 {
		t.Errorf("Blocks stored out of place: %+v", stats.Blocks)
	}
}
