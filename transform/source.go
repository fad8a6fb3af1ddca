package transform

import "github.com/gogpu/imgview"

// Extent is the size of a source view that has no upstream image.
type Extent struct {
	Cols, Rows, Planes int
}

func (e Extent) planes() int {
	if e.Planes <= 0 {
		return 1
	}
	return e.Planes
}

type constantView[P any] struct {
	ext   Extent
	value P
}

// Constant returns a view of the given extent whose every pixel is value.
// A zero Planes counts as one plane.
func Constant[P any](ext Extent, value P) imgview.View[P] {
	return multi[P]{constantView[P]{ext: ext, value: value}}
}

func (v constantView[P]) Cols() int   { return v.ext.Cols }
func (v constantView[P]) Rows() int   { return v.ext.Rows }
func (v constantView[P]) Planes() int { return v.ext.planes() }

func (v constantView[P]) Origin() imgview.Accessor[P] {
	return constantAccessor[P]{value: v.value}
}

func (v constantView[P]) Prerasterize() imgview.View[P] { return Constant(v.ext, v.value) }

func (v constantView[P]) Rasterize(dst imgview.Store[P]) { imgview.Rasterize[P](v, dst) }

type constantAccessor[P any] struct {
	value P
}

func (constantAccessor[P]) NextCol()            {}
func (constantAccessor[P]) PrevCol()            {}
func (constantAccessor[P]) NextRow()            {}
func (constantAccessor[P]) PrevRow()            {}
func (constantAccessor[P]) NextPlane()          {}
func (constantAccessor[P]) PrevPlane()          {}
func (constantAccessor[P]) Advance(_, _, _ int) {}
func (a constantAccessor[P]) Get() P            { return a.value }

type generateView[P any] struct {
	ext Extent
	fn  func(col, row, plane int) P
}

// Generate returns a view whose pixel at (col, row, plane) is
// fn(col, row, plane). fn must be pure.
func Generate[P any](ext Extent, fn func(col, row, plane int) P) imgview.View[P] {
	return multi[P]{generateView[P]{ext: ext, fn: fn}}
}

func (v generateView[P]) Cols() int   { return v.ext.Cols }
func (v generateView[P]) Rows() int   { return v.ext.Rows }
func (v generateView[P]) Planes() int { return v.ext.planes() }

func (v generateView[P]) Origin() imgview.Accessor[P] {
	return &generateAccessor[P]{fn: v.fn}
}

func (v generateView[P]) Prerasterize() imgview.View[P] { return Generate(v.ext, v.fn) }

func (v generateView[P]) Rasterize(dst imgview.Store[P]) { imgview.Rasterize[P](v, dst) }

type generateAccessor[P any] struct {
	col, row, plane int
	fn              func(col, row, plane int) P
}

func (a *generateAccessor[P]) NextCol()   { a.col++ }
func (a *generateAccessor[P]) PrevCol()   { a.col-- }
func (a *generateAccessor[P]) NextRow()   { a.row++ }
func (a *generateAccessor[P]) PrevRow()   { a.row-- }
func (a *generateAccessor[P]) NextPlane() { a.plane++ }
func (a *generateAccessor[P]) PrevPlane() { a.plane-- }

func (a *generateAccessor[P]) Advance(dc, dr, dp int) {
	a.col += dc
	a.row += dr
	a.plane += dp
}

func (a *generateAccessor[P]) Get() P { return a.fn(a.col, a.row, a.plane) }

// streamView is deliberately not MultiplyAccessible.
type streamView[P any] struct {
	ext  Extent
	next func() P
}

// Stream returns a single-pass view that yields next() for each pixel in
// rasterization order: planes, then rows, then columns. Cursor movement is
// ignored, so a Stream can be read once, front to back, and only through
// Rasterize. Parallel rasterization falls back to a sequential pass.
func Stream[P any](ext Extent, next func() P) imgview.View[P] {
	return streamView[P]{ext: ext, next: next}
}

func (v streamView[P]) Cols() int   { return v.ext.Cols }
func (v streamView[P]) Rows() int   { return v.ext.Rows }
func (v streamView[P]) Planes() int { return v.ext.planes() }

func (v streamView[P]) Origin() imgview.Accessor[P] {
	return streamAccessor[P]{next: v.next}
}

func (v streamView[P]) Prerasterize() imgview.View[P] { return v }

func (v streamView[P]) Rasterize(dst imgview.Store[P]) { imgview.Rasterize[P](v, dst) }

type streamAccessor[P any] struct {
	next func() P
}

func (streamAccessor[P]) NextCol()            {}
func (streamAccessor[P]) PrevCol()            {}
func (streamAccessor[P]) NextRow()            {}
func (streamAccessor[P]) PrevRow()            {}
func (streamAccessor[P]) NextPlane()          {}
func (streamAccessor[P]) PrevPlane()          {}
func (streamAccessor[P]) Advance(_, _, _ int) {}
func (a streamAccessor[P]) Get() P            { return a.next() }
