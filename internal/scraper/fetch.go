package scraper

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/obsidianstack/wlxstat/internal/config"
)

// maxPageSize caps how much of a response body is read.
const maxPageSize = 4 << 20

var (
	// ErrUnauthorized is returned when the device rejects the credentials.
	ErrUnauthorized = errors.New("authentication rejected")

	// ErrUnexpectedStatus is returned for any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrPageTooLarge is returned when the body exceeds maxPageSize.
	ErrPageTooLarge = errors.New("page too large")
)

// Page is a fetched status page.
type Page struct {
	URL         string
	ContentType string
	Body        []byte
}

// Fetcher retrieves one page. Implementations must perform at most one
// network round trip per call.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// HTTPFetcher is the Fetcher used against real devices.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a Fetcher that authenticates every request with
// creds using HTTP Basic auth.
func NewHTTPFetcher(creds config.Credentials) *HTTPFetcher {
	return &HTTPFetcher{client: buildHTTPClient(creds, http.DefaultTransport)}
}

// BasicToken returns the HTTP Basic token for creds: base64("user:pass").
func BasicToken(creds config.Credentials) string {
	return base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
}

// basicAuthRoundTripper injects the Authorization header into every request.
type basicAuthRoundTripper struct {
	base  http.RoundTripper
	creds config.Credentials
}

func (t *basicAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.creds.Username, t.creds.Password)
	return t.base.RoundTrip(req)
}

// buildHTTPClient wraps base with Basic auth. No Timeout is set; the caller's
// context is the only deadline.
func buildHTTPClient(creds config.Credentials, base http.RoundTripper) *http.Client {
	return &http.Client{
		Transport: &basicAuthRoundTripper{base: base, creds: creds},
	}
}

// Fetch performs a single GET to url and returns the raw body.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxPageSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrPageTooLarge, maxPageSize)
	}
	slog.Debug("scraper: page fetched", "url", url, "bytes", len(body),
		"content_type", resp.Header.Get("Content-Type"))

	return &Page{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
