// Package fetcher retrieves raw page content from the listing sites.
//
// Failures come back as *FetchError so callers can log and skip a source
// without aborting the rest of the run. Retries are a fixed attempt count
// with no backoff sophistication.
package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const UserAgent = "hackfeed/1.0 (github.com/hackeroos/hackfeed)"

// FetchError describes a failed fetch for one source.
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s from %s: %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher issues HTTP requests against the listing sites. An optional
// Renderer handles pages that only populate after client-side JS runs.
type Fetcher struct {
	client   *resty.Client
	renderer Renderer
}

// New creates a Fetcher with the given per-request timeout and retry count.
func New(timeout time.Duration, retries int) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetHeader("User-Agent", UserAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Listing sites throttle with 5xx; a retry usually clears it.
			return err != nil || r.StatusCode() >= 500
		})

	return &Fetcher{client: client}
}

// WithRenderer attaches a browser renderer used by GetRendered.
func (f *Fetcher) WithRenderer(r Renderer) *Fetcher {
	f.renderer = r
	return f
}

// Get fetches a URL and returns the response body.
func (f *Fetcher) Get(ctx context.Context, source, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &FetchError{Source: source, URL: url, Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &FetchError{
			Source: source,
			URL:    url,
			Err:    fmt.Errorf("unexpected status code: %d", resp.StatusCode()),
		}
	}
	return resp.Body(), nil
}

// GetRendered fetches a URL through the browser renderer when one is
// configured, falling back to a plain fetch otherwise. Listing sites like
// Devpost populate their cards client-side, so the plain fetch can return a
// shell document; the parser reports that as a ParseError.
func (f *Fetcher) GetRendered(ctx context.Context, source, url string) ([]byte, error) {
	if f.renderer == nil {
		return f.Get(ctx, source, url)
	}

	html, err := f.renderer.Render(ctx, url)
	if err != nil {
		return nil, &FetchError{Source: source, URL: url, Err: err}
	}
	return []byte(html), nil
}
