package imgview

import (
	"log/slog"
	"unsafe"
)

// buffer is the shared pixel allocation behind one or more stores.
// Its lifetime is the union of the stores that reference it.
type buffer[P any] struct {
	data []P
}

// newBuffer allocates n pixels. Fundamental pixel types are zero-filled;
// compound types get their DefaultPixel when they define one and Go's zero
// value otherwise.
func newBuffer[P any](n int) *buffer[P] {
	b := &buffer[P]{data: make([]P, n)}
	if IsFundamental[P]() {
		// make has already zeroed the memory.
		return b
	}
	var zero P
	if d, ok := any(zero).(Defaulter[P]); ok {
		v := d.DefaultPixel()
		for i := range b.data {
			b.data[i] = v
		}
	}
	return b
}

// Store is the standard in-memory image container.
//
// A Store is a view onto a reference-shared pixel buffer: the Store value
// itself holds only the buffer handle and the addressing geometry. Copying
// a Store is a shallow operation and the copy aliases the same pixels, so a
// write through either is visible through both. Resizing or resetting one
// handle detaches it from the buffer without affecting other handles.
//
// Pixel access is unchecked. Addressing outside the extent is undefined.
//
// Structural changes (SetSize, Assign, Reset) on handles that share a
// buffer must be synchronized by the caller.
type Store[P any] struct {
	buf                       *buffer[P]
	cols, rows, planes        int
	origin                    unsafe.Pointer
	cstride, rstride, pstride int
}

var (
	_ View[float32]          = Store[float32]{}
	_ Referenceable[float32] = Store[float32]{}
	_ MultiplyAccessible     = Store[float32]{}
	_ Resizable              = (*Store[float32])(nil)
)

// NewStore returns a store of the given extent. Planes defaults to 1.
func NewStore[P any](cols, rows int, planes ...int) Store[P] {
	var s Store[P]
	s.SetSize(cols, rows, planes...)
	return s
}

// FromView returns a new store sized to v with v rasterized into it.
// This is where a lazy chain of views becomes concrete pixels.
func FromView[P any](v View[P]) Store[P] {
	var s Store[P]
	s.Assign(v)
	return s
}

// Assign resizes s to the extent of v and rasterizes v into it.
//
// When the extent is unchanged the pixels are overwritten in place, so v
// must not read from the buffer of s unless it does so in the same layout.
// s.Assign(s.FlipVertical()) overwrites rows before they are read; use
// FromView to copy into a fresh buffer instead.
func (s *Store[P]) Assign(v View[P]) {
	s.SetSize(v.Cols(), v.Rows(), v.Planes())
	v.Rasterize(*s)
}

// Fill rasterizes v into the pixels s already addresses without resizing.
// The extent of s must match v. Fill takes a value receiver: the handle is
// not modified, only the pixels it points at.
func (s Store[P]) Fill(v View[P]) {
	v.Rasterize(s)
}

// SetSize changes the extent of s. Planes defaults to 1. Negative
// dimensions are treated as zero.
//
// If the extent is unchanged SetSize does nothing and the current pixels
// are kept. Otherwise s detaches from its buffer and, unless the new
// extent is empty, allocates a fresh one with row-major, plane-outer
// strides.
func (s *Store[P]) SetSize(cols, rows int, planes ...int) {
	p := 1
	if len(planes) > 0 {
		p = planes[0]
	}
	cols, rows, p = max(cols, 0), max(rows, 0), max(p, 0)
	if cols == s.cols && rows == s.rows && p == s.planes {
		return
	}

	n := cols * rows * p
	if n <= 0 {
		if s.buf != nil {
			Logger().Debug("imgview: releasing buffer", slog.Int("pixels", len(s.buf.data)))
		}
		s.buf = nil
		s.origin = nil
	} else {
		s.buf = newBuffer[P](n)
		s.origin = unsafe.Pointer(&s.buf.data[0])
		Logger().Debug("imgview: allocated buffer",
			slog.Int("cols", cols), slog.Int("rows", rows), slog.Int("planes", p),
			slog.Int("bytes", n*int(unsafe.Sizeof(*new(P)))))
	}

	s.cols, s.rows, s.planes = cols, rows, p
	s.cstride = 1
	s.rstride = cols
	s.pstride = rows * cols
}

// SetSizeLike sizes s to match the extent of d.
func (s *Store[P]) SetSizeLike(d Dimensioned) {
	s.SetSize(d.Cols(), d.Rows(), d.Planes())
}

// Reset detaches s from its buffer and zeroes its geometry.
func (s *Store[P]) Reset() {
	*s = Store[P]{}
}

// Cols returns the number of columns.
func (s Store[P]) Cols() int { return s.cols }

// Rows returns the number of rows.
func (s Store[P]) Rows() int { return s.rows }

// Planes returns the number of planes.
func (s Store[P]) Planes() int { return s.planes }

// Strides returns the signed element strides along columns, rows and planes.
func (s Store[P]) Strides() (cstride, rstride, pstride int) {
	return s.cstride, s.rstride, s.pstride
}

// Empty reports whether s has no addressable pixels.
func (s Store[P]) Empty() bool {
	return s.origin == nil
}

// Data returns the address of pixel (0, 0, 0), or nil for an empty store.
func (s Store[P]) Data() *P {
	return (*P)(s.origin)
}

// At returns the address of the pixel at (col, row) in the first plane.
func (s Store[P]) At(col, row int) *P {
	size := int(unsafe.Sizeof(*new(P)))
	return (*P)(unsafe.Add(s.origin, (col*s.cstride+row*s.rstride)*size))
}

// AtPlane returns the address of the pixel at (col, row, plane).
func (s Store[P]) AtPlane(col, row, plane int) *P {
	size := int(unsafe.Sizeof(*new(P)))
	return (*P)(unsafe.Add(s.origin, (col*s.cstride+row*s.rstride+plane*s.pstride)*size))
}

// Cursor returns a memory cursor positioned at pixel (0, 0, 0).
func (s Store[P]) Cursor() Cursor[P] {
	return NewCursor((*P)(s.origin), s.cstride, s.rstride, s.pstride)
}

// Origin returns a cursor positioned at pixel (0, 0, 0).
func (s Store[P]) Origin() Accessor[P] {
	c := s.Cursor()
	return &c
}

// Prerasterize returns s.
func (s Store[P]) Prerasterize() View[P] { return s }

// Rasterize copies s into dst.
func (s Store[P]) Rasterize(dst Store[P]) { Rasterize[P](s, dst) }

// MultiplyAccessible marks stores as safe for repeated random access.
func (Store[P]) MultiplyAccessible() {}

// SharesBuffer reports whether s and other reference the same allocation.
func (s Store[P]) SharesBuffer(other Store[P]) bool {
	return s.buf != nil && s.buf == other.buf
}

// Window returns a store aliasing the cols x rows region of s whose
// top-left pixel is (col, row). All planes are kept.
func (s Store[P]) Window(col, row, cols, rows int) Store[P] {
	w := s
	w.cols, w.rows = cols, rows
	if cols <= 0 || rows <= 0 || s.planes == 0 {
		w.origin = nil
		return w
	}
	w.origin = unsafe.Pointer(s.AtPlane(col, row, 0))
	return w
}

// Plane returns a single-plane store aliasing plane p of s.
func (s Store[P]) Plane(p int) Store[P] {
	w := s
	w.planes = 1
	if s.origin != nil {
		w.origin = unsafe.Pointer(s.AtPlane(0, 0, p))
	}
	return w
}

// FlipVertical returns a store aliasing s with the row order reversed.
func (s Store[P]) FlipVertical() Store[P] {
	w := s
	if s.origin != nil {
		w.origin = unsafe.Pointer(s.At(0, s.rows-1))
	}
	w.rstride = -s.rstride
	return w
}

// FlipHorizontal returns a store aliasing s with the column order reversed.
func (s Store[P]) FlipHorizontal() Store[P] {
	w := s
	if s.origin != nil {
		w.origin = unsafe.Pointer(s.At(s.cols-1, 0))
	}
	w.cstride = -s.cstride
	return w
}

// Transpose returns a store aliasing s with columns and rows exchanged.
func (s Store[P]) Transpose() Store[P] {
	w := s
	w.cols, w.rows = s.rows, s.cols
	w.cstride, w.rstride = s.rstride, s.cstride
	return w
}
