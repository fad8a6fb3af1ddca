package imgview

// Dimensioned reports the extent of an image along its three axes.
type Dimensioned interface {
	Cols() int
	Rows() int
	Planes() int
}

// View is the contract shared by concrete stores and computed views.
//
// Generic algorithms, the rasterizer and external collaborators such as
// file readers interact with pixel data only through this interface, so a
// View may be backed by memory or by an unevaluated chain of transforms.
type View[P any] interface {
	Dimensioned

	// Origin returns an accessor positioned at pixel (0, 0, 0).
	Origin() Accessor[P]

	// Prerasterize returns a view suited to bulk sequential extraction.
	// Memory-backed views return themselves. Computed views may collapse
	// or buffer part of their chain here.
	Prerasterize() View[P]

	// Rasterize writes this view into dst. It must be equivalent to
	// calling Rasterize(v, dst).
	Rasterize(dst Store[P])
}

// Referenceable views expose the memory address of each pixel.
type Referenceable[P any] interface {
	View[P]

	// AtPlane returns the address of the pixel at (col, row, plane).
	AtPlane(col, row, plane int) *P

	// Cursor returns a memory cursor positioned at pixel (0, 0, 0).
	Cursor() Cursor[P]
}

// Resizable views can change their own extent.
type Resizable interface {
	SetSize(cols, rows int, planes ...int)
}

// MultiplyAccessible views may be read at the same coordinate any number
// of times, in any order, without side effects. Single-pass streams do not
// implement it.
type MultiplyAccessible interface {
	MultiplyAccessible()
}

// Capabilities describes which optional contracts a view satisfies.
type Capabilities struct {
	Referenceable      bool
	Resizable          bool
	MultiplyAccessible bool
}

// CapabilitiesOf reports the capabilities of v.
func CapabilitiesOf[P any](v View[P]) Capabilities {
	_, ref := v.(Referenceable[P])
	_, rsz := v.(Resizable)
	_, multi := v.(MultiplyAccessible)
	return Capabilities{
		Referenceable:      ref,
		Resizable:          rsz,
		MultiplyAccessible: multi,
	}
}

// Extent returns the dimensions of d as a triple.
func Extent(d Dimensioned) (cols, rows, planes int) {
	return d.Cols(), d.Rows(), d.Planes()
}

// SameExtent reports whether a and b have identical dimensions.
func SameExtent(a, b Dimensioned) bool {
	return a.Cols() == b.Cols() && a.Rows() == b.Rows() && a.Planes() == b.Planes()
}
