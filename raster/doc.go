// Package raster provides the pixel-array type shared by the imagery
// fetchers and the land-cover tools, plus decoding of binary image
// payloads into that type.
//
// A Raster is a width x height grid of 8-bit unsigned samples with one,
// three, or four interleaved bands. Single-band rasters carry class codes
// or gray values; three- and four-band rasters carry RGB(A) imagery.
//
// # Ownership
//
// Every function in this package returns freshly allocated rasters. Nothing
// is cached or shared, so callers own the result outright and concurrent
// calls need no coordination.
package raster
