package imgview

import (
	"fmt"
	"unsafe"
)

// BufferDesc describes pixel memory owned outside this package, addressed
// in units of one channel value.
//
// Planes counts both interleaved channels and separate planes: a packed
// RGB image is described with Planes=3 and PStride=1, a planar one with
// Planes=3 and PStride=Rows*RStride.
type BufferDesc[C Channel] struct {
	Origin                    *C
	Cols, Rows, Planes        int
	CStride, RStride, PStride int
}

// Empty reports whether d describes no channel values.
func (d BufferDesc[C]) Empty() bool {
	return d.Cols <= 0 || d.Rows <= 0 || d.Planes <= 0
}

// ImportBuffer copies an external buffer into a new store of pixel type P.
//
// For a compound pixel type with N channels, d.Planes must equal N and the
// result has one plane. For a single-channel pixel type every plane of d
// becomes a plane of the store.
func ImportBuffer[P any, C Channel](d BufferDesc[C]) (Store[P], error) {
	channels, err := checkChannelLayout[P, C]()
	if err != nil {
		return Store[P]{}, err
	}
	if channels != 1 && d.Planes != channels {
		return Store[P]{}, &ArgumentError{Op: "import", Expected: channels, Actual: d.Planes}
	}
	if d.Empty() {
		return Store[P]{}, nil
	}
	if d.Origin == nil {
		return Store[P]{}, ErrNilBuffer
	}

	planes := 1
	if channels == 1 {
		planes = d.Planes
	}
	s := NewStore[P](d.Cols, d.Rows, planes)
	dst, err := ExportBuffer[P, C](s)
	if err != nil {
		return Store[P]{}, err
	}
	copyCursors(
		NewCursor(d.Origin, d.CStride, d.RStride, d.PStride),
		NewCursor(dst.Origin, dst.CStride, dst.RStride, dst.PStride),
		Block{Cols: d.Cols, Rows: d.Rows, Planes: d.Planes},
	)
	return s, nil
}

// ExportBuffer describes the memory of s as a buffer of channel values.
// The descriptor aliases s; no pixels are copied.
//
// A store cannot have both interleaved channels and more than one plane;
// such a store yields an *ArgumentError.
func ExportBuffer[P any, C Channel](s Store[P]) (BufferDesc[C], error) {
	channels, err := checkChannelLayout[P, C]()
	if err != nil {
		return BufferDesc[C]{}, err
	}
	if s.planes > 1 && channels != 1 {
		return BufferDesc[C]{}, &ArgumentError{Op: "export", Expected: 1, Actual: s.planes}
	}
	pstride := 1
	if channels == 1 {
		pstride = s.pstride
	}
	return BufferDesc[C]{
		Origin:  (*C)(s.origin),
		Cols:    s.cols,
		Rows:    s.rows,
		Planes:  channels * s.planes,
		CStride: s.cstride * channels,
		RStride: s.rstride * channels,
		PStride: pstride,
	}, nil
}

// checkChannelLayout returns the channel count of P after verifying that P
// is exactly that many values of C.
func checkChannelLayout[P any, C Channel]() (int, error) {
	channels := ChannelsOf[P]()
	psize := unsafe.Sizeof(*new(P))
	csize := unsafe.Sizeof(*new(C))
	if psize != uintptr(channels)*csize {
		return 0, fmt.Errorf("%w: %d-byte pixel is not %d channels of %d bytes", ErrLayout, psize, channels, csize)
	}
	return channels, nil
}
