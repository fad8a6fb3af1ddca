package imgview

import "reflect"

// Channel is the set of fundamental numeric types usable as a pixel channel.
type Channel interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Multichannel is implemented by compound pixel types to report how many
// interleaved channels they carry.
type Multichannel interface {
	Channels() int
}

// Defaulter is implemented by compound pixel types whose default value is
// not the all-zero byte pattern. Freshly sized stores of such types are
// initialised with DefaultPixel instead of being zeroed.
type Defaulter[P any] interface {
	DefaultPixel() P
}

// Gray is a single-channel pixel.
type Gray[T Channel] struct {
	V T
}

// Channels returns 1.
func (Gray[T]) Channels() int { return 1 }

// GrayA is a gray pixel with alpha.
type GrayA[T Channel] struct {
	V, A T
}

// Channels returns 2.
func (GrayA[T]) Channels() int { return 2 }

// RGB is a three-channel color pixel.
type RGB[T Channel] struct {
	R, G, B T
}

// Channels returns 3.
func (RGB[T]) Channels() int { return 3 }

// RGBA is a four-channel color pixel with alpha.
type RGBA[T Channel] struct {
	R, G, B, A T
}

// Channels returns 4.
func (RGBA[T]) Channels() int { return 4 }

// ChannelsOf returns the number of interleaved channels in pixel type P.
// Types that do not implement Multichannel count as one channel.
func ChannelsOf[P any]() int {
	var zero P
	if mc, ok := any(zero).(Multichannel); ok {
		return mc.Channels()
	}
	return 1
}

// IsFundamental reports whether P is a bool or numeric kind, i.e. a type
// for which the zero byte pattern is the meaningful default value.
func IsFundamental[P any]() bool {
	switch reflect.TypeFor[P]().Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
