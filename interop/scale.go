package interop

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/imgview"
)

type scaleView struct {
	src        imgview.View[RGBA8]
	cols, rows int
	interp     draw.Interpolator
}

// Scale returns src resampled to cols x rows with interp, for example
// draw.BiLinear or draw.CatmullRom. A nil interp selects
// draw.NearestNeighbor.
//
// Resampling reads neighbourhoods of source pixels, so the work is done
// once in Prerasterize: the source is materialized, scaled with
// golang.org/x/image/draw, and the resulting store stands in for the view.
// Origin also goes through Prerasterize, so every call rescales the whole
// image; rasterize the view, or wrap it with AsImage, before random reads.
func Scale(src imgview.View[RGBA8], cols, rows int, interp draw.Interpolator) imgview.View[RGBA8] {
	if interp == nil {
		interp = draw.NearestNeighbor
	}
	return scaleView{src: src, cols: cols, rows: rows, interp: interp}
}

func (v scaleView) Cols() int   { return v.cols }
func (v scaleView) Rows() int   { return v.rows }
func (v scaleView) Planes() int { return 1 }

func (v scaleView) Origin() imgview.Accessor[RGBA8] {
	return v.Prerasterize().Origin()
}

func (v scaleView) Prerasterize() imgview.View[RGBA8] {
	dst := imgview.NewStore[RGBA8](v.cols, v.rows)
	if dst.Empty() || v.src.Cols() <= 0 || v.src.Rows() <= 0 {
		return dst
	}
	src := ToRGBA(imgview.FromView(v.src))
	v.interp.Scale(ToRGBA(dst), image.Rect(0, 0, v.cols, v.rows), src, src.Bounds(), draw.Src, nil)
	return dst
}

func (v scaleView) Rasterize(dst imgview.Store[RGBA8]) { imgview.Rasterize[RGBA8](v, dst) }

// MultiplyAccessible reports that a scaled view can be read at random.
func (scaleView) MultiplyAccessible() {}
