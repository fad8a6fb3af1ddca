// Package transform provides lazily evaluated views.
//
// Each function wraps one or more imgview.View values and returns a new
// View without touching any pixels. Work happens only when the result is
// rasterized, typically by imgview.FromView or Store.Assign:
//
//	src := imgview.NewStore[float32](640, 480)
//	v := transform.FlipVertical(transform.Map(src, func(x float32) float32 {
//	    return 1 - x
//	}))
//	dst := imgview.FromView(v) // the only pass over the pixels
//
// Geometric views (Crop, FlipVertical, FlipHorizontal, Transpose) collapse
// to aliasing stores in Prerasterize when their source is memory-backed, so
// rasterizing them runs the pointer fast path.
//
// Views are MultiplyAccessible exactly when their sources are. Stream is
// the one single-pass source in this package.
package transform

import "github.com/gogpu/imgview"

// multi marks a view as MultiplyAccessible.
type multi[P any] struct {
	imgview.View[P]
}

func (multi[P]) MultiplyAccessible() {}

// inherit returns v, marked MultiplyAccessible when src is.
func inherit[P, S any](v imgview.View[P], src imgview.View[S]) imgview.View[P] {
	if _, ok := src.(imgview.MultiplyAccessible); ok {
		return multi[P]{v}
	}
	return v
}
