// Package fetch performs the blocking HTTP GETs pokedex needs and maps
// failures onto pokedex error codes.
package fetch

import (
	"context"
	"io"
	"net/http"

	"github.com/arthur-debert/pokedex/internal/version"
	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/logging"
)

// Client issues GET requests with a fixed User-Agent
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New creates a client. A nil http.Client means http.DefaultClient and an
// empty user agent means the pokedex default.
func New(httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	return &Client{HTTP: httpClient, UserAgent: userAgent}
}

// Get requests url and returns the response body on a 2xx status.
// The caller must close the body.
func (c *Client) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	logger := logging.GetLogger("fetch")
	done := logging.LogOperationStart(logger, "GET "+url)
	defer done()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to build request").
			WithDetail("url", url)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNetwork, "request failed").
			WithDetail("url", url)
	}

	logger.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("Response received")

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, errors.Newf(errors.ErrNotFound, "%s was not found", url).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, errors.Newf(errors.ErrNetwork, "unexpected status %s from %s", resp.Status, url).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}

	return resp.Body, nil
}
