package transform

import "github.com/gogpu/imgview"

type mapView[S, D any] struct {
	src imgview.View[S]
	fn  func(S) D
}

// Map returns a view whose pixels are fn applied to the pixels of src.
// fn must be pure: it may be called any number of times per coordinate
// and from several goroutines during parallel rasterization.
func Map[S, D any](src imgview.View[S], fn func(S) D) imgview.View[D] {
	return inherit[D](mapView[S, D]{src: src, fn: fn}, src)
}

func (v mapView[S, D]) Cols() int   { return v.src.Cols() }
func (v mapView[S, D]) Rows() int   { return v.src.Rows() }
func (v mapView[S, D]) Planes() int { return v.src.Planes() }

func (v mapView[S, D]) Origin() imgview.Accessor[D] {
	return &mapAccessor[S, D]{Accessor: v.src.Origin(), fn: v.fn}
}

func (v mapView[S, D]) Prerasterize() imgview.View[D] {
	return Map(v.src.Prerasterize(), v.fn)
}

func (v mapView[S, D]) Rasterize(dst imgview.Store[D]) { imgview.Rasterize[D](v, dst) }

type mapAccessor[S, D any] struct {
	imgview.Accessor[S]
	fn func(S) D
}

func (a *mapAccessor[S, D]) Get() D { return a.fn(a.Accessor.Get()) }

type zipView[A, B, D any] struct {
	a  imgview.View[A]
	b  imgview.View[B]
	fn func(A, B) D
}

// Map2 combines two views pixel by pixel. The result has the extent of a;
// b must be at least as large.
func Map2[A, B, D any](a imgview.View[A], b imgview.View[B], fn func(A, B) D) imgview.View[D] {
	v := zipView[A, B, D]{a: a, b: b, fn: fn}
	if _, ok := b.(imgview.MultiplyAccessible); !ok {
		return v
	}
	return inherit[D](v, a)
}

func (v zipView[A, B, D]) Cols() int   { return v.a.Cols() }
func (v zipView[A, B, D]) Rows() int   { return v.a.Rows() }
func (v zipView[A, B, D]) Planes() int { return v.a.Planes() }

func (v zipView[A, B, D]) Origin() imgview.Accessor[D] {
	return &zipAccessor[A, B, D]{a: v.a.Origin(), b: v.b.Origin(), fn: v.fn}
}

func (v zipView[A, B, D]) Prerasterize() imgview.View[D] {
	return Map2(v.a.Prerasterize(), v.b.Prerasterize(), v.fn)
}

func (v zipView[A, B, D]) Rasterize(dst imgview.Store[D]) { imgview.Rasterize[D](v, dst) }

type zipAccessor[A, B, D any] struct {
	a  imgview.Accessor[A]
	b  imgview.Accessor[B]
	fn func(A, B) D
}

func (z *zipAccessor[A, B, D]) NextCol()   { z.a.NextCol(); z.b.NextCol() }
func (z *zipAccessor[A, B, D]) PrevCol()   { z.a.PrevCol(); z.b.PrevCol() }
func (z *zipAccessor[A, B, D]) NextRow()   { z.a.NextRow(); z.b.NextRow() }
func (z *zipAccessor[A, B, D]) PrevRow()   { z.a.PrevRow(); z.b.PrevRow() }
func (z *zipAccessor[A, B, D]) NextPlane() { z.a.NextPlane(); z.b.NextPlane() }
func (z *zipAccessor[A, B, D]) PrevPlane() { z.a.PrevPlane(); z.b.PrevPlane() }

func (z *zipAccessor[A, B, D]) Advance(dc, dr, dp int) {
	z.a.Advance(dc, dr, dp)
	z.b.Advance(dc, dr, dp)
}

func (z *zipAccessor[A, B, D]) Get() D { return z.fn(z.a.Get(), z.b.Get()) }
