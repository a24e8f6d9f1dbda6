// Package fetch implements the ByteSource port for local paths and remote URLs.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.trai.ch/lockdiff/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second

	// maxBodyBytes caps how much of a remote response is read. Lockfiles are
	// text files; anything past this is a wrong URL, not a lockfile.
	maxBodyBytes = 32 << 20
)

// Fetcher implements ports.ByteSource. It reads plain paths and file:// URLs
// from disk and fetches http(s):// URLs with a timeout-configured client.
type Fetcher struct {
	httpClient *http.Client
}

// New creates a new Fetcher.
func New() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

// NewWithClient creates a Fetcher with a custom http client (used for testing).
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client}
}

// Fetch returns the raw bytes of the lockfile at src.
func (f *Fetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain file path. Single-letter schemes are Windows drive prefixes.
		return f.readFile(src)
	}

	switch u.Scheme {
	case "file":
		return f.readFile(u.Path)
	case "http", "https":
		return f.fetchHTTP(ctx, u)
	default:
		err := zerr.With(domain.ErrUnsupportedScheme, "scheme", u.Scheme)
		return nil, zerr.With(err, "source", src)
	}
}

func (f *Fetcher) readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}
	return data, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileFetchFailed.Error())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileFetchFailed.Error()), "url", u.String())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileFetchFailed.Error()), "url", u.String())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ferr := zerr.With(domain.ErrLockfileFetchFailed, "url", u.String())
		ferr = zerr.With(ferr, "status", resp.StatusCode)
		return nil, zerr.With(ferr, "body", string(body))
	}

	return body, nil
}
