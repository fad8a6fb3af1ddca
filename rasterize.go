package imgview

// Block is a box of pixel coordinates within an image: the half-open ranges
// [Col, Col+Cols), [Row, Row+Rows) and [Plane, Plane+Planes).
type Block struct {
	Col, Row, Plane    int
	Cols, Rows, Planes int
}

// BlockOf returns the block covering the full extent of d.
func BlockOf(d Dimensioned) Block {
	return Block{Cols: d.Cols(), Rows: d.Rows(), Planes: d.Planes()}
}

// Empty reports whether b contains no pixels.
func (b Block) Empty() bool {
	return b.Cols <= 0 || b.Rows <= 0 || b.Planes <= 0
}

// Pixels returns the number of pixels in b.
func (b Block) Pixels() int {
	if b.Empty() {
		return 0
	}
	return b.Cols * b.Rows * b.Planes
}

// Rasterize writes src into dst.
//
// Every coordinate in the extent of dst is written exactly once with the
// source pixel at the same coordinate. dst must already be sized to match
// src; Store.Assign and FromView take care of that. Rasterizing into an
// empty store does nothing.
func Rasterize[P any](src View[P], dst Store[P]) {
	RasterizeBlock(src, dst, BlockOf(dst))
}

// RasterizeBlock writes the pixels of src inside b into the same
// coordinates of dst. Disjoint blocks may be rasterized concurrently.
func RasterizeBlock[P any](src View[P], dst Store[P], b Block) {
	if b.Empty() || dst.Empty() {
		return
	}
	rasterizeBlock(src.Prerasterize(), dst, b)
}

// rasterizeBlock is RasterizeBlock for a source that has already been
// prerasterized.
func rasterizeBlock[P any](src View[P], dst Store[P], b Block) {
	d := dst.Cursor()
	d.Advance(b.Col, b.Row, b.Plane)

	if ref, ok := src.(Referenceable[P]); ok {
		s := ref.Cursor()
		s.Advance(b.Col, b.Row, b.Plane)
		copyCursors(s, d, b)
		return
	}

	acc := src.Origin()
	acc.Advance(b.Col, b.Row, b.Plane)
	pullAccessor(acc, d, b, func(v P) P { return v })
}

// RasterizeFunc writes src into dst, converting each pixel with conv.
// The iteration contract is the same as Rasterize.
func RasterizeFunc[S, D any](src View[S], dst Store[D], conv func(S) D) {
	b := BlockOf(dst)
	if b.Empty() || dst.Empty() {
		return
	}
	d := dst.Cursor()
	acc := src.Prerasterize().Origin()
	pullAccessor(acc, d, b, conv)
}

// copyCursors copies a block between two memory cursors positioned at the
// block's first pixel. The cursors never step past the last pixel.
func copyCursors[P any](s, d Cursor[P], b Block) {
	for p := 0; ; {
		sr, dr := s, d
		for r := 0; ; {
			sc, dc := sr, dr
			for c := 0; ; {
				dc.Set(sc.Get())
				if c++; c == b.Cols {
					break
				}
				sc.NextCol()
				dc.NextCol()
			}
			if r++; r == b.Rows {
				break
			}
			sr.NextRow()
			dr.NextRow()
		}
		if p++; p == b.Planes {
			break
		}
		s.NextPlane()
		d.NextPlane()
	}
}

// pullAccessor fills a block of d from a generic accessor. Accessors cannot
// be copied, so the walk returns to the start of each row and plane with
// relative moves.
func pullAccessor[S, D any](acc Accessor[S], d Cursor[D], b Block, conv func(S) D) {
	for p := 0; ; {
		dr := d
		for r := 0; ; {
			dc := dr
			for c := 0; ; {
				dc.Set(conv(acc.Get()))
				if c++; c == b.Cols {
					break
				}
				acc.NextCol()
				dc.NextCol()
			}
			if r++; r == b.Rows {
				break
			}
			acc.Advance(1-b.Cols, 1, 0)
			dr.NextRow()
		}
		if p++; p == b.Planes {
			break
		}
		acc.Advance(1-b.Cols, 1-b.Rows, 1)
		d.NextPlane()
	}
}
