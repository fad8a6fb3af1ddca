package imgview

import "testing"

func coord(c, r, p int) int { return p*10000 + r*100 + c }

// fillCoords writes coord(c, r, p) into every pixel of s.
func fillCoords(s Store[int]) {
	for p := range s.Planes() {
		for r := range s.Rows() {
			for c := range s.Cols() {
				*s.AtPlane(c, r, p) = coord(c, r, p)
			}
		}
	}
}

func assertCoords(t *testing.T, s Store[int]) {
	t.Helper()
	for p := range s.Planes() {
		for r := range s.Rows() {
			for c := range s.Cols() {
				if got, want := *s.AtPlane(c, r, p), coord(c, r, p); got != want {
					t.Fatalf("AtPlane(%d, %d, %d) = %d, want %d", c, r, p, got, want)
				}
			}
		}
	}
}

// coordView is a computed view whose pixel values encode their coordinates.
type coordView struct {
	cols, rows, planes int
}

func (v coordView) Cols() int                { return v.cols }
func (v coordView) Rows() int                { return v.rows }
func (v coordView) Planes() int              { return v.planes }
func (v coordView) Origin() Accessor[int]    { return &coordAccessor{} }
func (v coordView) Prerasterize() View[int]  { return v }
func (v coordView) Rasterize(dst Store[int]) { Rasterize[int](v, dst) }
func (coordView) MultiplyAccessible()        {}

type coordAccessor struct {
	c, r, p int
}

func (a *coordAccessor) NextCol()               { a.c++ }
func (a *coordAccessor) PrevCol()               { a.c-- }
func (a *coordAccessor) NextRow()               { a.r++ }
func (a *coordAccessor) PrevRow()               { a.r-- }
func (a *coordAccessor) NextPlane()             { a.p++ }
func (a *coordAccessor) PrevPlane()             { a.p-- }
func (a *coordAccessor) Advance(dc, dr, dp int) { a.c, a.r, a.p = a.c+dc, a.r+dr, a.p+dp }
func (a *coordAccessor) Get() int               { return coord(a.c, a.r, a.p) }

// countingStream is a single-pass source yielding 0, 1, 2, ... in the
// order its pixels are read.
type countingStream struct {
	cols, rows, planes int
	next               int
}

func (s *countingStream) Cols() int                { return s.cols }
func (s *countingStream) Rows() int                { return s.rows }
func (s *countingStream) Planes() int              { return s.planes }
func (s *countingStream) Origin() Accessor[int]    { return streamAccessor{s} }
func (s *countingStream) Prerasterize() View[int]  { return s }
func (s *countingStream) Rasterize(dst Store[int]) { Rasterize[int](s, dst) }

type streamAccessor struct {
	s *countingStream
}

func (streamAccessor) NextCol()            {}
func (streamAccessor) PrevCol()            {}
func (streamAccessor) NextRow()            {}
func (streamAccessor) PrevRow()            {}
func (streamAccessor) NextPlane()          {}
func (streamAccessor) PrevPlane()          {}
func (streamAccessor) Advance(_, _, _ int) {}

func (a streamAccessor) Get() int {
	v := a.s.next
	a.s.next++
	return v
}
