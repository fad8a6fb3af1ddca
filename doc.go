// Package imgview provides lazily evaluated image views and the concrete
// in-memory container they rasterize into.
//
// # Overview
//
// A [View] is anything with an extent (columns, rows, planes) whose pixels
// can be read through an [Accessor]. Views come in two kinds:
//
//   - [Store], which owns a reference-shared buffer of pixels, and
//   - computed views (see package transform), which describe a
//     transformation of other views without evaluating it.
//
// Computed views can be nested to any depth. Nothing is evaluated until a
// view is rasterized into a Store, which is the single place where every
// pixel is touched:
//
//	src := imgview.NewStore[float32](640, 480)
//	chain := transform.Map(transform.Transpose[float32](src), func(v float32) float32 {
//	    return v * v
//	})
//	dst := imgview.FromView(chain)
//
// # Stores
//
// A Store value is a handle: buffer reference, origin and three signed
// strides. Copying the value is shallow and the copies alias the same
// pixels. [Store.SetSize] allocates a fresh buffer whenever the extent
// changes, leaving other handles untouched. Pixel access through
// [Store.At], [Store.AtPlane] and [Cursor] is raw pointer arithmetic
// without bounds checks.
//
// [Store.Assign] resizes and then rasterizes. [Store.Fill] rasterizes into
// the existing pixels without resizing, even through a value copy of the
// handle, because the pixels, not the handle, are what it changes.
//
// # Capabilities
//
// Optional behaviour is expressed as interfaces: [Referenceable] views
// expose pixel addresses, [Resizable] views can be resized and
// [MultiplyAccessible] views may be read repeatedly and out of order.
// The rasterizer uses a pointer fast path for referenceable sources and
// a generic accessor walk otherwise.
//
// # Concurrency
//
// Nothing in this package locks. Rasterization writes each destination
// pixel once, independently, so disjoint [Block]s may be filled
// concurrently with [RasterizeBlock]; [RasterizeParallel] does exactly
// that. Structural changes to stores that share a buffer need external
// synchronization.
//
// # Logging
//
// imgview is silent by default. See [SetLogger].
package imgview
