// Package landcover simplifies and renders National Land Cover Database
// (NLCD) classification rasters.
//
// The NLCD taxonomy of ~21 cover codes is collapsed into six simplified
// classes (Simplify), and a simplified raster can be rendered into an RGB
// image for display (Colorize). Both the remap table and the display
// palette are fixed module-level constants.
package landcover
