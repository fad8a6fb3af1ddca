package imgview

import (
	"log/slog"

	"github.com/gogpu/imgview/internal/parallel"
)

// WorkerPool is a reusable set of goroutines for RasterizeParallel.
type WorkerPool struct {
	pool *parallel.WorkerPool
}

// NewWorkerPool starts a pool with n workers; n <= 0 selects GOMAXPROCS.
func NewWorkerPool(n int) *WorkerPool {
	return &WorkerPool{pool: parallel.NewWorkerPool(n)}
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int { return p.pool.Workers() }

// Close stops the workers. It is safe to call more than once.
func (p *WorkerPool) Close() { p.pool.Close() }

// RasterizeParallel is Rasterize with the destination extent split into
// disjoint blocks that are filled concurrently.
//
// The source is prerasterized once on the calling goroutine. Sources that
// are not MultiplyAccessible are rasterized sequentially, since a
// single-pass stream cannot be read out of order. Concurrent blocks only
// read src, so src must be safe for concurrent reads.
func RasterizeParallel[P any](src View[P], dst Store[P], opts ...ParallelOption) {
	b := BlockOf(dst)
	if b.Empty() || dst.Empty() {
		return
	}

	o := defaultParallelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pre := src.Prerasterize()
	if _, ok := pre.(MultiplyAccessible); !ok {
		Logger().Debug("imgview: source is single-pass, rasterizing sequentially")
		rasterizeBlock(pre, dst, b)
		return
	}

	grid := parallel.NewGrid(b.Cols, b.Rows, b.Planes, o.blockCols, o.blockRows)
	if grid.Len() == 1 {
		rasterizeBlock(pre, dst, b)
		return
	}

	pool := o.pool
	if pool == nil {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}

	Logger().Debug("imgview: parallel rasterize",
		slog.Int("blocks", grid.Len()),
		slog.Int("workers", pool.Workers()),
		slog.Int("block_cols", o.blockCols),
		slog.Int("block_rows", o.blockRows))

	jobs := make([]func(), grid.Len())
	for i := range jobs {
		r := grid.Region(i)
		jobs[i] = func() {
			rasterizeBlock(pre, dst, Block(r))
		}
	}
	pool.ExecuteAll(jobs)
}
