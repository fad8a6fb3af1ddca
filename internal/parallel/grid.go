// Package parallel schedules independent pixel blocks across goroutines.
//
// An image extent is split into a grid of rectangular blocks, by default
// 64x64 pixels per plane, small enough for one block of a typical pixel
// type to stay in L1/L2 cache while a worker fills it. Blocks never
// overlap, so each can be written by a different worker without locking.
//
// Thread safety: Grid values are immutable after creation. WorkerPool is
// safe for concurrent use.
package parallel

// Default block size constants.
const (
	// BlockCols is the default block width in pixels.
	BlockCols = 64

	// BlockRows is the default block height in pixels.
	BlockRows = 64
)

// Region is one block of a Grid in pixel coordinates.
type Region struct {
	Col, Row, Plane    int
	Cols, Rows, Planes int
}

// Grid divides a cols x rows x planes extent into blocks.
//
// Blocks are laid out row-major within a plane, planes outermost, matching
// the canonical memory layout. Edge blocks are smaller when the extent is
// not a multiple of the block size.
type Grid struct {
	cols, rows, planes int
	blockCols          int
	blockRows          int
	blocksX, blocksY   int
}

// NewGrid creates a grid over the given extent. Non-positive block sizes
// select the defaults. An empty extent yields a grid with no blocks.
func NewGrid(cols, rows, planes, blockCols, blockRows int) Grid {
	if blockCols <= 0 {
		blockCols = BlockCols
	}
	if blockRows <= 0 {
		blockRows = BlockRows
	}
	g := Grid{blockCols: blockCols, blockRows: blockRows}
	if cols <= 0 || rows <= 0 || planes <= 0 {
		return g
	}
	g.cols, g.rows, g.planes = cols, rows, planes
	g.blocksX = (cols + blockCols - 1) / blockCols
	g.blocksY = (rows + blockRows - 1) / blockRows
	return g
}

// BlocksX returns the number of blocks across a row.
func (g Grid) BlocksX() int { return g.blocksX }

// BlocksY returns the number of blocks down a column.
func (g Grid) BlocksY() int { return g.blocksY }

// Len returns the total number of blocks across all planes.
func (g Grid) Len() int { return g.blocksX * g.blocksY * g.planes }

// BlockSize returns the nominal block dimensions.
func (g Grid) BlockSize() (cols, rows int) { return g.blockCols, g.blockRows }

// Region returns block i, 0 <= i < Len().
func (g Grid) Region(i int) Region {
	perPlane := g.blocksX * g.blocksY
	plane := i / perPlane
	i -= plane * perPlane
	by, bx := i/g.blocksX, i%g.blocksX

	r := Region{
		Col:    bx * g.blockCols,
		Row:    by * g.blockRows,
		Plane:  plane,
		Cols:   g.blockCols,
		Rows:   g.blockRows,
		Planes: 1,
	}
	// Right and bottom edge blocks are clipped to the extent.
	if r.Col+r.Cols > g.cols {
		r.Cols = g.cols - r.Col
	}
	if r.Row+r.Rows > g.rows {
		r.Rows = g.rows - r.Row
	}
	return r
}

// Regions returns every block in layout order.
func (g Grid) Regions() []Region {
	out := make([]Region, g.Len())
	for i := range out {
		out[i] = g.Region(i)
	}
	return out
}
