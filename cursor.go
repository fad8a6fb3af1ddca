package imgview

import "unsafe"

// Accessor walks the pixels of a view one axis step at a time.
//
// Every view's Origin returns an Accessor positioned at (0, 0, 0).
// Memory-backed views return a *Cursor; computed views return their own
// implementation that evaluates pixels on Get.
type Accessor[P any] interface {
	NextCol()
	PrevCol()
	NextRow()
	PrevRow()
	NextPlane()
	PrevPlane()

	// Advance moves the accessor by dc columns, dr rows and dp planes.
	Advance(dc, dr, dp int)

	// Get returns the pixel at the current position.
	Get() P
}

// Cursor is a strided pointer into pixel memory.
//
// The three strides are signed byte offsets between neighbouring pixels
// along the column, row and plane axes. Negative strides describe reversed
// traversal over the same memory. A Cursor performs no bounds checking:
// the caller is responsible for staying within the extent of the view it
// was obtained from.
type Cursor[P any] struct {
	ptr     unsafe.Pointer
	cstride int
	rstride int
	pstride int
}

// NewCursor returns a cursor at origin with the given element strides.
func NewCursor[P any](origin *P, cstride, rstride, pstride int) Cursor[P] {
	size := int(unsafe.Sizeof(*new(P)))
	return Cursor[P]{
		ptr:     unsafe.Pointer(origin),
		cstride: cstride * size,
		rstride: rstride * size,
		pstride: pstride * size,
	}
}

// NextCol steps one column forward.
func (c *Cursor[P]) NextCol() { c.ptr = unsafe.Add(c.ptr, c.cstride) }

// PrevCol steps one column back.
func (c *Cursor[P]) PrevCol() { c.ptr = unsafe.Add(c.ptr, -c.cstride) }

// NextRow steps one row forward.
func (c *Cursor[P]) NextRow() { c.ptr = unsafe.Add(c.ptr, c.rstride) }

// PrevRow steps one row back.
func (c *Cursor[P]) PrevRow() { c.ptr = unsafe.Add(c.ptr, -c.rstride) }

// NextPlane steps one plane forward.
func (c *Cursor[P]) NextPlane() { c.ptr = unsafe.Add(c.ptr, c.pstride) }

// PrevPlane steps one plane back.
func (c *Cursor[P]) PrevPlane() { c.ptr = unsafe.Add(c.ptr, -c.pstride) }

// Advance moves the cursor by dc columns, dr rows and dp planes.
func (c *Cursor[P]) Advance(dc, dr, dp int) {
	c.ptr = unsafe.Add(c.ptr, dc*c.cstride+dr*c.rstride+dp*c.pstride)
}

// Ptr returns the address of the current pixel.
func (c *Cursor[P]) Ptr() *P { return (*P)(c.ptr) }

// Get returns the current pixel.
func (c *Cursor[P]) Get() P { return *(*P)(c.ptr) }

// Set overwrites the current pixel.
func (c *Cursor[P]) Set(v P) { *(*P)(c.ptr) = v }
