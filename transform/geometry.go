package transform

import "github.com/gogpu/imgview"

type cropView[P any] struct {
	src                  imgview.View[P]
	col, row, cols, rows int
}

// Crop returns the cols x rows region of src whose top-left pixel is
// (col, row). The region must lie within src.
func Crop[P any](src imgview.View[P], col, row, cols, rows int) imgview.View[P] {
	return inherit[P](cropView[P]{src: src, col: col, row: row, cols: cols, rows: rows}, src)
}

func (v cropView[P]) Cols() int   { return v.cols }
func (v cropView[P]) Rows() int   { return v.rows }
func (v cropView[P]) Planes() int { return v.src.Planes() }

func (v cropView[P]) Origin() imgview.Accessor[P] {
	a := v.src.Origin()
	a.Advance(v.col, v.row, 0)
	return a
}

func (v cropView[P]) Prerasterize() imgview.View[P] {
	pre := v.src.Prerasterize()
	if s, ok := pre.(imgview.Store[P]); ok {
		return s.Window(v.col, v.row, v.cols, v.rows)
	}
	return Crop(pre, v.col, v.row, v.cols, v.rows)
}

func (v cropView[P]) Rasterize(dst imgview.Store[P]) { imgview.Rasterize[P](v, dst) }

type flipVView[P any] struct {
	src imgview.View[P]
}

// FlipVertical returns src upside down.
func FlipVertical[P any](src imgview.View[P]) imgview.View[P] {
	return inherit[P](flipVView[P]{src: src}, src)
}

func (v flipVView[P]) Cols() int   { return v.src.Cols() }
func (v flipVView[P]) Rows() int   { return v.src.Rows() }
func (v flipVView[P]) Planes() int { return v.src.Planes() }

func (v flipVView[P]) Origin() imgview.Accessor[P] {
	a := v.src.Origin()
	a.Advance(0, v.src.Rows()-1, 0)
	return flipVAccessor[P]{a}
}

func (v flipVView[P]) Prerasterize() imgview.View[P] {
	pre := v.src.Prerasterize()
	if s, ok := pre.(imgview.Store[P]); ok {
		return s.FlipVertical()
	}
	return FlipVertical(pre)
}

func (v flipVView[P]) Rasterize(dst imgview.Store[P]) { imgview.Rasterize[P](v, dst) }

type flipVAccessor[P any] struct {
	imgview.Accessor[P]
}

func (a flipVAccessor[P]) NextRow()               { a.Accessor.PrevRow() }
func (a flipVAccessor[P]) PrevRow()               { a.Accessor.NextRow() }
func (a flipVAccessor[P]) Advance(dc, dr, dp int) { a.Accessor.Advance(dc, -dr, dp) }

type flipHView[P any] struct {
	src imgview.View[P]
}

// FlipHorizontal returns src mirrored left to right.
func FlipHorizontal[P any](src imgview.View[P]) imgview.View[P] {
	return inherit[P](flipHView[P]{src: src}, src)
}

func (v flipHView[P]) Cols() int   { return v.src.Cols() }
func (v flipHView[P]) Rows() int   { return v.src.Rows() }
func (v flipHView[P]) Planes() int { return v.src.Planes() }

func (v flipHView[P]) Origin() imgview.Accessor[P] {
	a := v.src.Origin()
	a.Advance(v.src.Cols()-1, 0, 0)
	return flipHAccessor[P]{a}
}

func (v flipHView[P]) Prerasterize() imgview.View[P] {
	pre := v.src.Prerasterize()
	if s, ok := pre.(imgview.Store[P]); ok {
		return s.FlipHorizontal()
	}
	return FlipHorizontal(pre)
}

func (v flipHView[P]) Rasterize(dst imgview.Store[P]) { imgview.Rasterize[P](v, dst) }

type flipHAccessor[P any] struct {
	imgview.Accessor[P]
}

func (a flipHAccessor[P]) NextCol()               { a.Accessor.PrevCol() }
func (a flipHAccessor[P]) PrevCol()               { a.Accessor.NextCol() }
func (a flipHAccessor[P]) Advance(dc, dr, dp int) { a.Accessor.Advance(-dc, dr, dp) }

type transposeView[P any] struct {
	src imgview.View[P]
}

// Transpose returns src with columns and rows exchanged.
func Transpose[P any](src imgview.View[P]) imgview.View[P] {
	return inherit[P](transposeView[P]{src: src}, src)
}

func (v transposeView[P]) Cols() int   { return v.src.Rows() }
func (v transposeView[P]) Rows() int   { return v.src.Cols() }
func (v transposeView[P]) Planes() int { return v.src.Planes() }

func (v transposeView[P]) Origin() imgview.Accessor[P] {
	return transposeAccessor[P]{v.src.Origin()}
}

func (v transposeView[P]) Prerasterize() imgview.View[P] {
	pre := v.src.Prerasterize()
	if s, ok := pre.(imgview.Store[P]); ok {
		return s.Transpose()
	}
	return Transpose(pre)
}

func (v transposeView[P]) Rasterize(dst imgview.Store[P]) { imgview.Rasterize[P](v, dst) }

type transposeAccessor[P any] struct {
	imgview.Accessor[P]
}

func (a transposeAccessor[P]) NextCol()               { a.Accessor.NextRow() }
func (a transposeAccessor[P]) PrevCol()               { a.Accessor.PrevRow() }
func (a transposeAccessor[P]) NextRow()               { a.Accessor.NextCol() }
func (a transposeAccessor[P]) PrevRow()               { a.Accessor.PrevCol() }
func (a transposeAccessor[P]) Advance(dc, dr, dp int) { a.Accessor.Advance(dr, dc, dp) }
