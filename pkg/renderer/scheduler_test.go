package renderer

import (
	"errors"
	"testing"
)

func TestSchedule_CoversEveryRowOnce(t *testing.T) {
	tests := []struct {
		height, workers, expectedBlocks int
	}{
		{800, 4, 4},
		{801, 4, 4},
		{7, 3, 3},
		{3, 8, 3},
		{1, 1, 1},
	}

	for _, tt := range tests {
		blocks, err := Schedule(tt.height, tt.workers)
		if err != nil {
			t.Fatalf("Schedule(%d, %d) failed: %v", tt.height, tt.workers, err)
		}
		if len(blocks) != tt.expectedBlocks {
			t.Errorf("Schedule(%d, %d): expected %d blocks, got %d", tt.height, tt.workers, tt.expectedBlocks, len(blocks))
		}

		next := 0
		for idx, b := range blocks {
			if b.Index != idx || b.Start != next || b.Rows() <= 0 {
				t.Errorf("Schedule(%d, %d): bad block %+v", tt.height, tt.workers, b)
			}
			if idx > 0 && b.Rows() > blocks[0].Rows() {
				t.Errorf("Schedule(%d, %d): extra rows should go to the first blocks", tt.height, tt.workers)
			}
			next = b.End
		}
		if next != tt.height {
			t.Errorf("Schedule(%d, %d): blocks end at row %d", tt.height, tt.workers, next)
		}
	}
}

func TestSchedule_Errors(t *testing.T) {
	if _, err := Schedule(10, 0); !errors.Is(err, ErrNoWorkers) {
		t.Errorf("Expected ErrNoWorkers, got %v", err)
	}
	if _, err := Schedule(0, 2); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("Expected ErrInvalidFrame, got %v", err)
	}
}
