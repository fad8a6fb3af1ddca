package imgview

import (
	"encoding/binary"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a 64-bit xxHash of the extent and pixel bytes of v, read
// plane by plane, row by row. Two views with equal extents and equal pixel
// values hash equally regardless of their memory layout.
//
// P should be plain data without padding or pointers; otherwise the hash
// covers padding bytes and addresses.
func Digest[P any](v View[P]) uint64 {
	h := xxhash.New()
	var hdr [24]byte
	binary.LittleEndian.PutUint64(hdr[0:], uint64(v.Cols()))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(v.Rows()))
	binary.LittleEndian.PutUint64(hdr[16:], uint64(v.Planes()))
	_, _ = h.Write(hdr[:])

	b := BlockOf(v)
	if b.Empty() {
		return h.Sum64()
	}
	size := int(unsafe.Sizeof(*new(P)))

	pre := v.Prerasterize()
	if s, ok := pre.(Store[P]); ok && s.contiguous() {
		_, _ = h.Write(unsafe.Slice((*byte)(s.origin), b.Pixels()*size))
		return h.Sum64()
	}

	acc := pre.Origin()
	for p := 0; p < b.Planes; p++ {
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				px := acc.Get()
				_, _ = h.Write(unsafe.Slice((*byte)(unsafe.Pointer(&px)), size))
				if c+1 < b.Cols {
					acc.NextCol()
				}
			}
			if r+1 < b.Rows {
				acc.Advance(1-b.Cols, 1, 0)
			}
		}
		if p+1 < b.Planes {
			acc.Advance(1-b.Cols, 1-b.Rows, 1)
		}
	}
	return h.Sum64()
}

// contiguous reports whether s uses the canonical layout over a single run
// of memory.
func (s Store[P]) contiguous() bool {
	return s.origin != nil && s.cstride == 1 && s.rstride == s.cols && s.pstride == s.rows*s.cols
}
