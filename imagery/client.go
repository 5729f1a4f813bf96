package imagery

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Ecotrust/nrds-coding-challenge/raster"
)

// Doer issues a single HTTP request. *http.Client satisfies it; tests and
// callers with their own transport stack can substitute anything else.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultTimeout = 60 * time.Second

// NewHTTPClient returns an HTTP client tuned for one-shot image exports:
// an overall request timeout with proportional header and TLS deadlines,
// and no keep-alives since the services are hit once per call.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			ResponseHeaderTimeout: timeout * 2 / 3,
			TLSHandshakeTimeout:   timeout / 3,
			DisableKeepAlives:     true,
		},
	}
}

// defaultClient serves fetches that do not inject their own transport.
var defaultClient = NewHTTPClient(defaultTimeout)

// fetchRaster performs one GET against reqURL and decodes the body into a
// raster. The body is always fully consumed and closed, so no connection
// state leaks across retry attempts.
func fetchRaster(client Doer, reqURL string) (*raster.Raster, error) {
	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	img, err := raster.Decode(body)
	if err != nil {
		return nil, err
	}
	return img, nil
}
