package landcover

import "github.com/Ecotrust/nrds-coding-challenge/raster"

// Simplified land-cover classes produced by Simplify.
const (
	ClassUnlabeled uint8 = 0 // no source class, or source code outside the NLCD taxonomy
	ClassWater     uint8 = 1 // open water, perennial ice/snow
	ClassForest    uint8 = 2 // deciduous/evergreen/mixed forest, woody wetlands
	ClassVegetated uint8 = 3 // scrub, grassland, pasture, crops, herbaceous wetlands
	ClassBarren    uint8 = 4 // barren land, unconsolidated shore
	ClassDeveloped uint8 = 5 // developed, all intensities
	ClassNoData    uint8 = 255
)

// NLCD land-cover layer names published by the MRLC web service.
const (
	LayerNLCD2001 = "NLCD_2001_Land_Cover_L48"
	LayerNLCD2004 = "NLCD_2004_Land_Cover_L48"
	LayerNLCD2006 = "NLCD_2006_Land_Cover_L48"
	LayerNLCD2008 = "NLCD_2008_Land_Cover_L48"
	LayerNLCD2011 = "NLCD_2011_Land_Cover_L48"
	LayerNLCD2013 = "NLCD_2013_Land_Cover_L48"
	LayerNLCD2016 = "NLCD_2016_Land_Cover_L48"
)

// nlcdRemap collapses NLCD cover codes into the simplified classes. The
// table spans the full uint8 domain so the per-pixel remap is a plain
// index with no bounds or membership checks; codes the NLCD taxonomy does
// not define fall through to ClassUnlabeled.
var nlcdRemap = [256]uint8{
	1:  ClassWater,     // open water
	2:  ClassWater,     // perennial ice/snow
	3:  ClassDeveloped, // developed, open space
	4:  ClassDeveloped, // developed, low intensity
	5:  ClassDeveloped, // developed, medium intensity
	6:  ClassDeveloped, // developed, high intensity
	7:  ClassBarren,    // barren land (rock/sand/clay)
	8:  ClassBarren,    // unconsolidated shore
	9:  ClassForest,    // deciduous forest
	10: ClassForest,    // evergreen forest
	11: ClassForest,    // mixed forest
	12: ClassVegetated, // dwarf scrub (AK only)
	13: ClassVegetated, // shrub/scrub
	14: ClassVegetated, // grasslands/herbaceous
	15: ClassVegetated, // sedge/herbaceous (AK only)
	16: ClassVegetated, // lichens (AK only)
	17: ClassVegetated, // moss (AK only)
	18: ClassVegetated, // pasture/hay
	19: ClassVegetated, // cultivated crops
	20: ClassForest,    // woody wetlands
	21: ClassVegetated, // emergent herbaceous wetlands
}

// Simplify returns a copy of the raster with every sample remapped from
// the NLCD taxonomy to the simplified classes. The remap is a single pass
// over the samples; the input raster is not modified.
//
// The mapping is defined for a single application only: feeding an
// already-simplified raster back through Simplify does not round-trip.
func Simplify(r *raster.Raster) *raster.Raster {
	out := r.Clone()
	for i, v := range out.Pix {
		out.Pix[i] = nlcdRemap[v]
	}
	return out
}

// ClassName returns a short human-readable label for a simplified class
// code.
func ClassName(code uint8) string {
	switch code {
	case ClassUnlabeled:
		return "unlabeled"
	case ClassWater:
		return "water/ice"
	case ClassForest:
		return "forest"
	case ClassVegetated:
		return "non-forest vegetated"
	case ClassBarren:
		return "barren"
	case ClassDeveloped:
		return "developed"
	case ClassNoData:
		return "nodata"
	}
	return "unknown"
}
