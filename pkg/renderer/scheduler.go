package renderer

// Block is a contiguous range of frame rows [Start, End)
type Block struct {
	Index int
	Start int
	End   int
}

// Rows returns the number of rows in the block
func (b Block) Rows() int {
	return b.End - b.Start
}

// Schedule splits height rows into one block per worker. Rows that do not
// divide evenly go to the first blocks, and there are never more blocks
// than rows.
func Schedule(height, workers int) ([]Block, error) {
	if workers <= 0 {
		return nil, ErrNoWorkers
	}
	if height <= 0 {
		return nil, ErrInvalidFrame
	}
	if workers > height {
		workers = height
	}

	blockH := height / workers
	extra := height % workers

	blocks := make([]Block, workers)
	start := 0
	for idx := range blocks {
		rows := blockH
		if idx < extra {
			rows++
		}
		blocks[idx] = Block{Index: idx, Start: start, End: start + rows}
		start += rows
	}
	return blocks, nil
}
