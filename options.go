package imgview

import "github.com/gogpu/imgview/internal/parallel"

// ParallelOption configures RasterizeParallel.
//
// Example:
//
//	imgview.RasterizeParallel(view, dst,
//	    imgview.WithWorkers(8),
//	    imgview.WithBlockSize(128, 32))
type ParallelOption func(*parallelOptions)

// parallelOptions holds the settings for one RasterizeParallel call.
type parallelOptions struct {
	workers   int
	blockCols int
	blockRows int
	pool      *parallel.WorkerPool
}

// defaultParallelOptions returns GOMAXPROCS workers and 64x64 blocks.
func defaultParallelOptions() parallelOptions {
	return parallelOptions{
		blockCols: parallel.BlockCols,
		blockRows: parallel.BlockRows,
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.workers = n
	}
}

// WithBlockSize sets the block size each worker rasterizes at a time.
// Non-positive values keep the default of 64.
func WithBlockSize(cols, rows int) ParallelOption {
	return func(o *parallelOptions) {
		if cols > 0 {
			o.blockCols = cols
		}
		if rows > 0 {
			o.blockRows = rows
		}
	}
}

// WithWorkerPool reuses an existing pool instead of starting one per call.
// The caller keeps ownership and must Close the pool. A nil pool is ignored.
func WithWorkerPool(p *WorkerPool) ParallelOption {
	return func(o *parallelOptions) {
		if p != nil {
			o.pool = p.pool
		}
	}
}
