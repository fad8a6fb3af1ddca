package imgview

import (
	"testing"
	"unsafe"
)

// sentinel has a default value that is not all-zero bytes.
type sentinel struct {
	V int32
}

func (sentinel) DefaultPixel() sentinel { return sentinel{V: -1} }

// plain is a compound pixel without a custom default.
type plain struct {
	A, B int16
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name               string
		cols, rows, planes int
		wantEmpty          bool
	}{
		{"4x3", 4, 3, 1, false},
		{"1x1", 1, 1, 1, false},
		{"planar", 5, 2, 3, false},
		{"zero cols", 0, 3, 1, true},
		{"zero rows", 4, 0, 1, true},
		{"zero planes", 4, 3, 0, true},
		{"all zero", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore[float32](tt.cols, tt.rows, tt.planes)
			if s.Cols() != tt.cols || s.Rows() != tt.rows || s.Planes() != tt.planes {
				t.Errorf("extent = (%d, %d, %d), want (%d, %d, %d)",
					s.Cols(), s.Rows(), s.Planes(), tt.cols, tt.rows, tt.planes)
			}
			if s.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", s.Empty(), tt.wantEmpty)
			}
			if tt.wantEmpty {
				if s.Data() != nil {
					t.Error("Data() of empty store should be nil")
				}
				return
			}

			c, r, p := s.Strides()
			if c != 1 || r != tt.cols || p != tt.cols*tt.rows {
				t.Errorf("Strides() = (%d, %d, %d), want (1, %d, %d)", c, r, p, tt.cols, tt.cols*tt.rows)
			}

			seen := make(map[*float32]bool)
			for pl := range tt.planes {
				for y := range tt.rows {
					for x := range tt.cols {
						seen[s.AtPlane(x, y, pl)] = true
					}
				}
			}
			if want := tt.cols * tt.rows * tt.planes; len(seen) != want {
				t.Errorf("distinct addresses = %d, want %d", len(seen), want)
			}
		})
	}
}

func TestNewStore_DefaultPlanes(t *testing.T) {
	s := NewStore[uint8](3, 2)
	if s.Planes() != 1 {
		t.Errorf("Planes() = %d, want 1", s.Planes())
	}
}

func TestStore_AliasingScenario(t *testing.T) {
	a := NewStore[int32](4, 3)

	n := 0
	for y := range a.Rows() {
		for x := range a.Cols() {
			n++
			if v := *a.At(x, y); v != 0 {
				t.Errorf("At(%d, %d) = %d, want 0", x, y, v)
			}
		}
	}
	if n != 12 {
		t.Fatalf("visited %d pixels, want 12", n)
	}

	*a.At(2, 1) = 7
	b := a
	if got := *b.At(2, 1); got != 7 {
		t.Errorf("copy At(2, 1) = %d, want 7", got)
	}

	*b.At(2, 1) = 9
	if got := *a.At(2, 1); got != 9 {
		t.Errorf("first handle At(2, 1) = %d after write through copy, want 9", got)
	}
	if !a.SharesBuffer(b) {
		t.Error("SharesBuffer() = false for a shallow copy")
	}
}

func TestStore_SetSizeUnchangedIsNoop(t *testing.T) {
	s := NewStore[uint16](8, 4, 2)
	*s.AtPlane(3, 2, 1) = 1234
	before := s.Data()

	s.SetSize(8, 4, 2)

	if s.Data() != before {
		t.Error("SetSize with unchanged extent reallocated the buffer")
	}
	if got := *s.AtPlane(3, 2, 1); got != 1234 {
		t.Errorf("AtPlane(3, 2, 1) = %d after no-op SetSize, want 1234", got)
	}
}

func TestStore_SetSizeZeroReleases(t *testing.T) {
	s := NewStore[float64](5, 5)
	s.SetSize(0, 0)

	if !s.Empty() {
		t.Error("Empty() = false after SetSize(0, 0)")
	}
	if s.Data() != nil {
		t.Error("Data() should be nil after SetSize(0, 0)")
	}
	if s.Cols() != 0 || s.Rows() != 0 {
		t.Errorf("extent = (%d, %d), want (0, 0)", s.Cols(), s.Rows())
	}
}

func TestStore_SetSizeDetaches(t *testing.T) {
	a := NewStore[int](2, 2)
	*a.At(1, 1) = 5
	b := a

	a.SetSize(3, 3)

	if a.SharesBuffer(b) {
		t.Error("resized store still shares the old buffer")
	}
	if got := *b.At(1, 1); got != 5 {
		t.Errorf("other handle At(1, 1) = %d, want 5", got)
	}
	if got := *a.At(1, 1); got != 0 {
		t.Errorf("resized At(1, 1) = %d, want 0", got)
	}
}

func TestStore_CompoundDefaults(t *testing.T) {
	s := NewStore[sentinel](3, 2, 2)
	for p := range 2 {
		for y := range 2 {
			for x := range 3 {
				if got := s.AtPlane(x, y, p).V; got != -1 {
					t.Fatalf("AtPlane(%d, %d, %d).V = %d, want -1", x, y, p, got)
				}
			}
		}
	}

	z := NewStore[plain](2, 2)
	if got := *z.At(1, 1); got != (plain{}) {
		t.Errorf("plain At(1, 1) = %+v, want zero value", got)
	}
}

func TestStore_FundamentalZeroed(t *testing.T) {
	s := NewStore[float64](7, 3)
	*s.At(6, 2) = 3.5
	s.SetSize(3, 7)
	for y := range 7 {
		for x := range 3 {
			if v := *s.At(x, y); v != 0 {
				t.Fatalf("At(%d, %d) = %v after resize, want 0", x, y, v)
			}
		}
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore[uint8](4, 4)
	other := s
	s.Reset()

	if !s.Empty() || s.Cols() != 0 || s.Rows() != 0 || s.Planes() != 0 {
		t.Errorf("after Reset: extent (%d, %d, %d), empty %v", s.Cols(), s.Rows(), s.Planes(), s.Empty())
	}
	if c, r, p := s.Strides(); c != 0 || r != 0 || p != 0 {
		t.Errorf("after Reset: Strides() = (%d, %d, %d), want zeros", c, r, p)
	}
	if other.Empty() {
		t.Error("Reset affected another handle")
	}
}

func TestStore_AssignResizes(t *testing.T) {
	src := NewStore[int](5, 3, 2)
	fillCoords(src)

	dst := NewStore[int](2, 2)
	dst.Assign(src)

	if !SameExtent(dst, src) {
		t.Fatalf("extent after Assign = (%d, %d, %d), want (5, 3, 2)", dst.Cols(), dst.Rows(), dst.Planes())
	}
	if dst.SharesBuffer(src) {
		t.Error("Assign should copy pixels, not alias")
	}
	assertCoords(t, dst)
}

func TestStore_FillInPlace(t *testing.T) {
	dst := NewStore[int](4, 3)
	handle := dst
	before := dst.Data()

	src := NewStore[int](4, 3)
	fillCoords(src)
	handle.Fill(src)

	if dst.Data() != before {
		t.Error("Fill reallocated the destination")
	}
	assertCoords(t, dst)
}

func TestFromView(t *testing.T) {
	v := coordView{cols: 6, rows: 4, planes: 3}
	s := FromView[int](v)
	if !SameExtent(s, v) {
		t.Fatalf("extent = (%d, %d, %d), want (6, 4, 3)", s.Cols(), s.Rows(), s.Planes())
	}
	assertCoords(t, s)
}

func TestStore_SetSizeLike(t *testing.T) {
	var s Store[uint8]
	s.SetSizeLike(coordView{cols: 3, rows: 2, planes: 4})
	if s.Cols() != 3 || s.Rows() != 2 || s.Planes() != 4 {
		t.Errorf("extent = (%d, %d, %d), want (3, 2, 4)", s.Cols(), s.Rows(), s.Planes())
	}
}

func TestStore_Window(t *testing.T) {
	s := NewStore[int](6, 5)
	fillCoords(s)

	w := s.Window(2, 1, 3, 2)
	if w.Cols() != 3 || w.Rows() != 2 {
		t.Fatalf("window extent = (%d, %d), want (3, 2)", w.Cols(), w.Rows())
	}
	for y := range 2 {
		for x := range 3 {
			if got, want := *w.At(x, y), coord(x+2, y+1, 0); got != want {
				t.Errorf("window At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	*w.At(0, 0) = -1
	if *s.At(2, 1) != -1 {
		t.Error("write through window not visible in parent")
	}
	if !s.Window(0, 0, 0, 2).Empty() {
		t.Error("zero-width window should be empty")
	}
}

func TestStore_Flips(t *testing.T) {
	s := NewStore[int](4, 3)
	fillCoords(s)

	v := s.FlipVertical()
	h := s.FlipHorizontal()
	for y := range 3 {
		for x := range 4 {
			if got, want := *v.At(x, y), *s.At(x, 2-y); got != want {
				t.Errorf("FlipVertical At(%d, %d) = %d, want %d", x, y, got, want)
			}
			if got, want := *h.At(x, y), *s.At(3-x, y); got != want {
				t.Errorf("FlipHorizontal At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if _, r, _ := v.Strides(); r != -4 {
		t.Errorf("FlipVertical row stride = %d, want -4", r)
	}
}

func TestStore_Transpose(t *testing.T) {
	s := NewStore[int](4, 3)
	fillCoords(s)

	tr := s.Transpose()
	if tr.Cols() != 3 || tr.Rows() != 4 {
		t.Fatalf("extent = (%d, %d), want (3, 4)", tr.Cols(), tr.Rows())
	}
	for y := range 4 {
		for x := range 3 {
			if got, want := *tr.At(x, y), *s.At(y, x); got != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestStore_Plane(t *testing.T) {
	s := NewStore[int](3, 2, 3)
	fillCoords(s)

	p := s.Plane(2)
	if p.Planes() != 1 {
		t.Fatalf("Planes() = %d, want 1", p.Planes())
	}
	if got, want := *p.At(1, 1), coord(1, 1, 2); got != want {
		t.Errorf("At(1, 1) = %d, want %d", got, want)
	}
}

func TestStore_AtMatchesPointerArithmetic(t *testing.T) {
	s := NewStore[uint32](5, 4, 2)
	base := uintptr(unsafe.Pointer(s.Data()))
	size := unsafe.Sizeof(uint32(0))

	got := uintptr(unsafe.Pointer(s.AtPlane(3, 2, 1)))
	want := base + uintptr(3+2*5+1*20)*size
	if got != want {
		t.Errorf("AtPlane(3, 2, 1) offset = %d, want %d", got-base, want-base)
	}
}

func TestCapabilitiesOf(t *testing.T) {
	s := NewStore[int](2, 2)

	tests := []struct {
		name string
		v    View[int]
		want Capabilities
	}{
		{"store value", s, Capabilities{Referenceable: true, MultiplyAccessible: true}},
		{"store pointer", &s, Capabilities{Referenceable: true, Resizable: true, MultiplyAccessible: true}},
		{"computed", coordView{cols: 2, rows: 2, planes: 1}, Capabilities{MultiplyAccessible: true}},
		{"stream", &countingStream{cols: 2, rows: 2, planes: 1}, Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapabilitiesOf(tt.v); got != tt.want {
				t.Errorf("CapabilitiesOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStore_SetSizeNegative(t *testing.T) {
	tests := []struct {
		name               string
		cols, rows, planes int
	}{
		{"both negative", -2, -3, 1},
		{"negative cols", -2, 3, 1},
		{"negative planes", 2, 3, -1},
		{"two negatives with planes", -2, 3, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore[int](tt.cols, tt.rows, tt.planes)
			if !s.Empty() {
				t.Error("Empty() = false for a negative extent")
			}
			if s.Cols() < 0 || s.Rows() < 0 || s.Planes() < 0 {
				t.Errorf("extent = (%d, %d, %d), want no negative dimension", s.Cols(), s.Rows(), s.Planes())
			}
		})
	}
}

func TestStore_AssignFlippedCopy(t *testing.T) {
	s := NewStore[int](3, 4)
	fillCoords(s)

	// A differently laid out view of the same buffer goes through a fresh store.
	flipped := FromView[int](s.FlipVertical())
	if flipped.SharesBuffer(s) {
		t.Fatal("FromView result shares the source buffer")
	}
	for r := range 4 {
		for c := range 3 {
			if got, want := *flipped.At(c, r), coord(c, 3-r, 0); got != want {
				t.Errorf("At(%d, %d) = %d, want %d", c, r, got, want)
			}
		}
	}
	assertCoords(t, s)
}
