package imagery

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Ecotrust/nrds-coding-challenge/raster"
)

// DefaultAerialURL is the exportImage endpoint of the Oregon Geospatial
// Enterprise Office's 2016 NAIP image service.
const DefaultAerialURL = "https://imagery.oregonexplorer.info/arcgis/rest/services/NAIP_2016/NAIP_2016_SL/ImageServer/exportImage"

const (
	// DefaultSpatialRef is the spatial reference used when none is given:
	// EPSG:5070, CONUS Albers equal-area.
	DefaultSpatialRef = 5070

	// DefaultMaxRetries is the total number of fetch attempts made before
	// the aerial fetcher gives up.
	DefaultMaxRetries = 3
)

// AerialOptions adjusts FetchAerialImage. The zero value (or a nil
// pointer) selects all defaults.
type AerialOptions struct {
	// SpatialRef is the EPSG code for both the bounding box and the
	// requested output. Defaults to DefaultSpatialRef.
	SpatialRef int

	// MaxRetries is the total number of attempts, the first included.
	// Defaults to DefaultMaxRetries.
	MaxRetries int

	// Params are extra query parameters overlaid on the defaults; on key
	// collision the extra value wins.
	Params map[string]string

	// BaseURL overrides the export endpoint. Defaults to DefaultAerialURL.
	BaseURL string

	// Client issues the requests. Defaults to a shared client built by
	// NewHTTPClient.
	Client Doer

	// Logger receives per-attempt failure logs. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

func (o *AerialOptions) withDefaults() AerialOptions {
	var out AerialOptions
	if o != nil {
		out = *o
	}
	if out.SpatialRef == 0 {
		out.SpatialRef = DefaultSpatialRef
	}
	if out.MaxRetries == 0 {
		out.MaxRetries = DefaultMaxRetries
	}
	if out.BaseURL == "" {
		out.BaseURL = DefaultAerialURL
	}
	if out.Client == nil {
		out.Client = defaultClient
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// FetchAerialImage retrieves a NAIP aerial image covering bbox, rendered
// at width x height pixels.
//
// The request asks for an uncompressed 8-bit TIFF with bilinear
// resampling; the returned raster has 3 or 4 bands depending on what the
// service sends back. Transport errors, non-2xx statuses, and undecodable
// bodies each consume one attempt; attempts run back-to-back with no
// delay, and the first success returns immediately. When every attempt
// fails the result is an error wrapping ErrRetryExhausted together with
// the individual attempt errors — there is no nil-raster success path.
func FetchAerialImage(bbox BBox, width, height int, opts *AerialOptions) (*raster.Raster, error) {
	o := opts.withDefaults()

	defaults := map[string]string{
		"bbox":                 bbox.String(),
		"bboxSR":               strconv.Itoa(o.SpatialRef),
		"size":                 fmt.Sprintf("%d,%d", width, height),
		"imageSR":              strconv.Itoa(o.SpatialRef),
		"format":               "tiff",
		"pixelType":            "U8",
		"noData":               "",
		"noDataInterpretation": "esriNoDataMatchAny",
		"interpolation":        "+RSP_BilinearInterpolation",
		"compression":          "",
		"compressionQuality":   "",
		"bandIds":              "",
		"mosaicRule":           "",
		"renderingRule":        "",
		"f":                    "image",
	}
	reqURL, err := buildURL(o.BaseURL, mergeParams(defaults, o.Params))
	if err != nil {
		return nil, err
	}

	var attemptErrs error
	for attempt := 1; attempt <= o.MaxRetries; attempt++ {
		img, err := fetchRaster(o.Client, reqURL)
		if err == nil {
			return img, nil
		}
		o.Logger.Warn("aerial image fetch attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", o.MaxRetries),
			zap.Error(err))
		attemptErrs = multierr.Append(attemptErrs, err)
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, o.MaxRetries, attemptErrs)
}
