package imagery

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BBox is a rectangular geographic extent (minX, minY, maxX, maxY) in the
// spatial reference supplied alongside it. Coordinates must be finite with
// MinX < MaxX and MinY < MaxY; this is not validated here — a malformed
// box surfaces as a service error on fetch.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// String serializes the box as the comma-joined coordinate list the
// imagery services expect.
func (b BBox) String() string {
	coords := []float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// mergeParams overlays caller extras on the default parameter set, last
// writer wins, and returns the merged query values.
func mergeParams(defaults, extras map[string]string) url.Values {
	q := make(url.Values, len(defaults)+len(extras))
	for k, v := range defaults {
		q.Set(k, v)
	}
	for k, v := range extras {
		q.Set(k, v)
	}
	return q
}

// buildURL attaches query values to a base endpoint, preserving any query
// parameters already baked into the base (e.g. a WMS service/request
// pair). Values for keys present in both are replaced, not appended.
func buildURL(base string, q url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	merged := u.Query()
	for k, vs := range q {
		merged[k] = vs
	}
	u.RawQuery = merged.Encode()
	return u.String(), nil
}
