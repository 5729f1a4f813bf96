// Package imagery fetches remote-sensed rasters from public web services.
//
// Two fetchers are provided: FetchAerialImage retrieves NAIP aerial
// photography from the Oregon Geospatial Enterprise Office image service,
// and FetchLandCover retrieves National Land Cover Database (NLCD)
// classification rasters from the MRLC Consortium's WMS and simplifies
// their class codes via the landcover package.
//
// Both fetchers build a parameterized GET request, issue it synchronously,
// and decode the binary response into a raster.Raster. Caller-supplied
// extra parameters overlay the defaults key by key, last writer wins.
//
// # Error handling
//
// The aerial fetcher retries failed attempts up to a bounded count and
// reports exhaustion with an error wrapping ErrRetryExhausted. The
// land-cover fetcher deliberately performs a single attempt and propagates
// the first transport or decode error; see FetchLandCover.
//
// # Concurrency
//
// The fetchers hold no state between calls. Concurrent calls need no
// coordination; the default HTTP client is safe for concurrent use, as any
// injected replacement must be.
//
// No timeout or cancellation semantics are defined here — deadlines belong
// to the transport, either the default client's timeout or whatever the
// caller injects via the Client option.
package imagery
