package raster

// Raster is a 2D grid of 8-bit unsigned samples with interleaved bands.
//
// Samples are stored row-major: the sample for band b of the pixel at
// (x, y) lives at Pix[(y*Width+x)*Bands+b]. Band counts of 1 (classified
// or grayscale), 3 (RGB), and 4 (RGBA) are the ones produced by this
// module, but the type itself does not restrict Bands.
type Raster struct {
	// Width and Height are the pixel dimensions of the grid.
	Width, Height int

	// Bands is the number of interleaved samples per pixel.
	Bands int

	// Pix holds the samples; len(Pix) == Width*Height*Bands.
	Pix []uint8
}

// New allocates a zero-filled raster of the given dimensions.
func New(width, height, bands int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Bands:  bands,
		Pix:    make([]uint8, width*height*bands),
	}
}

// PixOffset returns the index into Pix of the first sample of the pixel
// at (x, y).
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * r.Bands
}

// At returns the sample for the given band of the pixel at (x, y).
// Coordinates are 0-based with the origin at the top-left; no bounds
// checking is performed.
func (r *Raster) At(x, y, band int) uint8 {
	return r.Pix[r.PixOffset(x, y)+band]
}

// Set stores a sample for the given band of the pixel at (x, y).
func (r *Raster) Set(x, y, band int, v uint8) {
	r.Pix[r.PixOffset(x, y)+band] = v
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out := &Raster{
		Width:  r.Width,
		Height: r.Height,
		Bands:  r.Bands,
		Pix:    make([]uint8, len(r.Pix)),
	}
	copy(out.Pix, r.Pix)
	return out
}
