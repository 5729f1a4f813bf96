package landcover

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Ecotrust/nrds-coding-challenge/raster"
)

// ErrUnknownClass reports a raster sample with no entry in the display
// palette.
var ErrUnknownClass = errors.New("class code not in display palette")

// palette assigns display colors, with channels in [0, 1], to the
// simplified classes.
var palette = map[uint8]colorful.Color{
	ClassUnlabeled: {R: 1, G: 1, B: 1},
	ClassWater:     {R: 0, G: 0, B: 1},
	ClassForest:    {R: 0, G: 0.5, B: 0},
	ClassVegetated: {R: 0.5, G: 1, B: 0.5},
	ClassBarren:    {R: 0.5, G: 0.375, B: 0.375},
	ClassDeveloped: {R: 0, G: 0, B: 0},
	ClassNoData:    {R: 1, G: 0, B: 0},
}

// Colorize renders a simplified land-cover raster as a 3-band RGB image.
//
// The input must contain only simplified class codes ({0..5} plus the
// 255 nodata sentinel). Any other value is a contract violation and
// returns an error wrapping ErrUnknownClass rather than leaving pixels
// unset. Palette channels are scaled to 8 bits by truncation, so
// ClassForest renders as (0, 127, 0).
//
// A multi-band input is treated as per-class scores with one band per
// class and is reduced to class codes by arg-max before rendering. The
// output always has the input's height and width and exactly 3 bands.
func Colorize(r *raster.Raster) (*raster.Raster, error) {
	classes := r
	if r.Bands > 1 {
		classes = argmaxBands(r)
	}

	// One pass to collect the distinct values present, so an undefined
	// code is rejected before any output pixel is written.
	var present [256]bool
	for _, v := range classes.Pix {
		present[v] = true
	}

	var lut [256][3]uint8
	for v, ok := range present {
		if !ok {
			continue
		}
		c, defined := palette[uint8(v)]
		if !defined {
			return nil, fmt.Errorf("%w: %d (%s)", ErrUnknownClass, v, ClassName(uint8(v)))
		}
		lut[v] = [3]uint8{uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255)}
	}

	out := raster.New(classes.Width, classes.Height, 3)
	for i, v := range classes.Pix {
		rgb := lut[v]
		copy(out.Pix[i*3:i*3+3], rgb[:])
	}
	return out, nil
}

// argmaxBands reduces a bands-last score raster to a single band holding,
// per pixel, the index of the highest-scoring band. Ties go to the lowest
// index.
func argmaxBands(r *raster.Raster) *raster.Raster {
	out := raster.New(r.Width, r.Height, 1)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			best, bestScore := 0, r.At(x, y, 0)
			for b := 1; b < r.Bands; b++ {
				if v := r.At(x, y, b); v > bestScore {
					best, bestScore = b, v
				}
			}
			out.Set(x, y, 0, uint8(best))
		}
	}
	return out
}
