package raster

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// Decode turns a binary image payload (such as an HTTP response body) into
// a Raster.
//
// TIFF, PNG, JPEG, GIF, and BMP payloads are accepted. The band count of
// the result follows the decoded image, not the caller:
//
//   - grayscale and palette-indexed images produce 1 band; for indexed
//     images the samples are the palette indices, which is how classified
//     rasters (e.g. land-cover GeoTIFFs) carry their class codes
//   - RGB(A) images produce 3 bands when fully opaque, 4 otherwise
//   - any other color model is converted to 3-band RGB
//
// A payload that is not a decodable image (for example an HTML error page
// returned by a web service) yields an error.
func Decode(data []byte) (*Raster, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into a Raster, choosing the band
// count described on Decode.
func FromImage(img image.Image) *Raster {
	switch src := img.(type) {
	case *image.Gray:
		return fromSingleBand(src.Pix, src.Stride, src.Bounds())
	case *image.Paletted:
		return fromSingleBand(src.Pix, src.Stride, src.Bounds())
	case *image.NRGBA:
		return fromInterleaved(src.Pix, src.Stride, src.Bounds(), src.Opaque())
	case *image.RGBA:
		return fromInterleaved(src.Pix, src.Stride, src.Bounds(), src.Opaque())
	}
	return fromGeneric(img)
}

func fromSingleBand(pix []uint8, stride int, bounds image.Rectangle) *Raster {
	out := New(bounds.Dx(), bounds.Dy(), 1)
	for y := 0; y < out.Height; y++ {
		copy(out.Pix[y*out.Width:(y+1)*out.Width], pix[y*stride:])
	}
	return out
}

// fromInterleaved copies 4-channel pixel data, dropping the alpha channel
// when the image is fully opaque.
func fromInterleaved(pix []uint8, stride int, bounds image.Rectangle, opaque bool) *Raster {
	bands := 4
	if opaque {
		bands = 3
	}
	out := New(bounds.Dx(), bounds.Dy(), bands)
	for y := 0; y < out.Height; y++ {
		row := pix[y*stride:]
		for x := 0; x < out.Width; x++ {
			copy(out.Pix[out.PixOffset(x, y):], row[x*4:x*4+bands])
		}
	}
	return out
}

// fromGeneric handles color models without a direct sample layout (e.g.
// 16-bit or YCbCr images) by converting every pixel to 8-bit RGB.
func fromGeneric(img image.Image) *Raster {
	bounds := img.Bounds()
	out := New(bounds.Dx(), bounds.Dy(), 3)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Convert from 16-bit to 8-bit
			i := out.PixOffset(x, y)
			out.Pix[i] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(b >> 8)
		}
	}
	return out
}
