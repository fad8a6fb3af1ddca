package imgview

import (
	"errors"
	"fmt"
)

// Common errors for buffer interop.
var (
	// ErrArgument is the base of every argument error; match it with errors.Is.
	ErrArgument = errors.New("imgview: invalid argument")

	// ErrNilBuffer is returned when a non-empty buffer descriptor has no origin.
	ErrNilBuffer = errors.New("imgview: nil buffer origin")

	// ErrLayout is returned when a pixel type cannot be reinterpreted as
	// the requested channel layout.
	ErrLayout = errors.New("imgview: incompatible pixel layout")
)

// ArgumentError reports an externally supplied buffer whose channel count
// does not match the pixel type.
type ArgumentError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("imgview: %s: incompatible number of planes (need %d, got %d)", e.Op, e.Expected, e.Actual)
}

// Unwrap returns ErrArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrArgument
}
