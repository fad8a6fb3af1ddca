// Package interop bridges imgview stores and views with the standard
// image package.
//
// Conversions into a store copy pixels once; ToRGBA and ToGray alias the
// store's memory when its layout allows and copy otherwise. AsImage wraps
// any view as an image.Image without rasterizing it.
package interop
