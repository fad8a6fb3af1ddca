package interop

import (
	"image"
	"image/color"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/gogpu/imgview"
)

// RGBA8 is the 8-bit, premultiplied RGBA pixel used by image.RGBA.
type RGBA8 = imgview.RGBA[uint8]

// FromImage copies img into a new store. Images other than *image.RGBA
// are converted with draw.Draw first.
func FromImage(img image.Image) imgview.Store[RGBA8] {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return fromRGBA(rgba)
}

// fromRGBA imports an *image.RGBA through its buffer description.
func fromRGBA(img *image.RGBA) imgview.Store[RGBA8] {
	b := img.Bounds()
	if b.Empty() {
		return imgview.Store[RGBA8]{}
	}
	origin := &img.Pix[img.PixOffset(b.Min.X, b.Min.Y)]
	s, err := imgview.ImportBuffer[RGBA8](imgview.BufferDesc[uint8]{
		Origin:  origin,
		Cols:    b.Dx(),
		Rows:    b.Dy(),
		Planes:  4,
		CStride: 4,
		RStride: img.Stride,
		PStride: 1,
	})
	if err != nil {
		// The descriptor is built from a well-formed image.RGBA.
		panic(err)
	}
	return s
}

// FromGray copies img into a new single-plane uint8 store.
func FromGray(img *image.Gray) imgview.Store[uint8] {
	b := img.Bounds()
	if b.Empty() {
		return imgview.Store[uint8]{}
	}
	s, err := imgview.ImportBuffer[uint8](imgview.BufferDesc[uint8]{
		Origin:  &img.Pix[img.PixOffset(b.Min.X, b.Min.Y)],
		Cols:    b.Dx(),
		Rows:    b.Dy(),
		Planes:  1,
		CStride: 1,
		RStride: img.Stride,
	})
	if err != nil {
		panic(err)
	}
	return s
}

// ToRGBA returns plane 0 of s as an *image.RGBA. A store whose rows are
// laid out left to right, top to bottom is aliased, so writes to either
// are shared; any other layout is copied.
func ToRGBA(s imgview.Store[RGBA8]) *image.RGBA {
	if s.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	s = s.Plane(0)
	if c, r, _ := s.Strides(); c != 1 || r < s.Cols() {
		s = imgview.FromView[RGBA8](s)
	}
	_, rstride, _ := s.Strides()
	n := ((s.Rows()-1)*rstride + s.Cols()) * 4
	return &image.RGBA{
		Pix:    unsafe.Slice((*uint8)(unsafe.Pointer(s.Data())), n),
		Stride: rstride * 4,
		Rect:   image.Rect(0, 0, s.Cols(), s.Rows()),
	}
}

// ToGray returns plane 0 of s as an *image.Gray, aliasing s when its
// layout allows.
func ToGray(s imgview.Store[uint8]) *image.Gray {
	if s.Empty() {
		return image.NewGray(image.Rectangle{})
	}
	s = s.Plane(0)
	if c, r, _ := s.Strides(); c != 1 || r < s.Cols() {
		s = imgview.FromView[uint8](s)
	}
	_, rstride, _ := s.Strides()
	n := (s.Rows()-1)*rstride + s.Cols()
	return &image.Gray{
		Pix:    unsafe.Slice(s.Data(), n),
		Stride: rstride,
		Rect:   image.Rect(0, 0, s.Cols(), s.Rows()),
	}
}

// AsImage presents plane 0 of v as an image.Image. Each At call walks an
// accessor to the requested pixel, so v must be MultiplyAccessible for the
// result to be meaningful.
//
// A view whose Prerasterize collapses to a store, such as Scale, is
// prerasterized once here and the store is read directly.
func AsImage(v imgview.View[RGBA8]) image.Image {
	if _, ok := v.(imgview.Referenceable[RGBA8]); !ok {
		if pre, ok := v.Prerasterize().(imgview.Referenceable[RGBA8]); ok {
			v = pre
		}
	}
	return viewImage{v: v}
}

type viewImage struct {
	v imgview.View[RGBA8]
}

func (m viewImage) ColorModel() color.Model { return color.RGBAModel }

func (m viewImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.v.Cols(), m.v.Rows())
}

func (m viewImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return color.RGBA{}
	}
	if r, ok := m.v.(imgview.Referenceable[RGBA8]); ok {
		return rgbaColor(*r.AtPlane(x, y, 0))
	}
	a := m.v.Origin()
	a.Advance(x, y, 0)
	return rgbaColor(a.Get())
}

func rgbaColor(p RGBA8) color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
