package landcover

import (
	"errors"
	"testing"

	"github.com/Ecotrust/nrds-coding-challenge/raster"
)

// classRaster builds a single-band raster filled with one class code.
func classRaster(width, height int, code uint8) *raster.Raster {
	r := raster.New(width, height, 1)
	for i := range r.Pix {
		r.Pix[i] = code
	}
	return r
}

func TestColorize_Totality(t *testing.T) {
	// Expected triples are the palette scaled by 255 and truncated, so
	// 0.5 -> 127 and 0.375 -> 95, never rounded up.
	tests := []struct {
		name    string
		code    uint8
		r, g, b uint8
	}{
		{"unlabeled", ClassUnlabeled, 255, 255, 255},
		{"water", ClassWater, 0, 0, 255},
		{"forest", ClassForest, 0, 127, 0},
		{"vegetated", ClassVegetated, 127, 255, 127},
		{"barren", ClassBarren, 127, 95, 95},
		{"developed", ClassDeveloped, 0, 0, 0},
		{"nodata", ClassNoData, 255, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Colorize(classRaster(4, 4, tt.code))
			if err != nil {
				t.Fatalf("Colorize failed: %v", err)
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					r, g, b := out.At(x, y, 0), out.At(x, y, 1), out.At(x, y, 2)
					if r != tt.r || g != tt.g || b != tt.b {
						t.Fatalf("At(%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
							x, y, r, g, b, tt.r, tt.g, tt.b)
					}
				}
			}
		})
	}
}

func TestColorize_MixedClasses(t *testing.T) {
	src := raster.New(2, 2, 1)
	copy(src.Pix, []uint8{ClassWater, ClassForest, ClassDeveloped, ClassNoData})

	out, err := Colorize(src)
	if err != nil {
		t.Fatalf("Colorize failed: %v", err)
	}

	wantPix := []uint8{
		0, 0, 255, // water
		0, 127, 0, // forest
		0, 0, 0, // developed
		255, 0, 0, // nodata
	}
	for i, want := range wantPix {
		if got := out.Pix[i]; got != want {
			t.Errorf("Pix[%d]: got %d, want %d", i, got, want)
		}
	}
}

func TestColorize_ShapePreservation(t *testing.T) {
	out, err := Colorize(classRaster(7, 5, ClassWater))
	if err != nil {
		t.Fatalf("Colorize failed: %v", err)
	}

	if out.Width != 7 || out.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 7x5", out.Width, out.Height)
	}
	if out.Bands != 3 {
		t.Errorf("Bands: got %d, want 3", out.Bands)
	}
}

func TestColorize_UnknownClassFails(t *testing.T) {
	tests := []struct {
		name string
		code uint8
	}{
		{"raw NLCD code", 9},
		{"just past the simplified range", 6},
		{"arbitrary junk", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := classRaster(4, 4, ClassWater)
			src.Set(2, 2, 0, tt.code) // one bad pixel is enough

			_, err := Colorize(src)
			if err == nil {
				t.Fatal("Colorize should fail for a value outside the palette")
			}
			if !errors.Is(err, ErrUnknownClass) {
				t.Errorf("error should wrap ErrUnknownClass, got: %v", err)
			}
		})
	}
}

func TestColorize_MultiBandArgmax(t *testing.T) {
	// Three bands act as per-class scores; the winning band index is the
	// class code.
	src := raster.New(2, 1, 3)
	src.Set(0, 0, 1, 200) // band 1 wins -> water
	src.Set(1, 0, 2, 200) // band 2 wins -> forest

	out, err := Colorize(src)
	if err != nil {
		t.Fatalf("Colorize failed: %v", err)
	}

	if out.Bands != 3 || out.Width != 2 || out.Height != 1 {
		t.Fatalf("dimensions: got %dx%dx%d, want 2x1x3", out.Width, out.Height, out.Bands)
	}
	if r, g, b := out.At(0, 0, 0), out.At(0, 0, 1), out.At(0, 0, 2); r != 0 || g != 0 || b != 255 {
		t.Errorf("pixel 0: got (%d,%d,%d), want water (0,0,255)", r, g, b)
	}
	if r, g, b := out.At(1, 0, 0), out.At(1, 0, 1), out.At(1, 0, 2); r != 0 || g != 127 || b != 0 {
		t.Errorf("pixel 1: got (%d,%d,%d), want forest (0,127,0)", r, g, b)
	}
}

func TestArgmaxBands_TieGoesToLowestIndex(t *testing.T) {
	src := raster.New(1, 1, 4)
	src.Set(0, 0, 1, 50)
	src.Set(0, 0, 3, 50)

	out := argmaxBands(src)
	if got := out.At(0, 0, 0); got != 1 {
		t.Errorf("tie-break: got class %d, want 1", got)
	}
}
