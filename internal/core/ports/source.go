package ports

import "context"

// ByteSource fetches raw lockfile content from a local path or remote URL.
// Timeouts and transport concerns live behind this interface; the core never
// retries a failed fetch.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type ByteSource interface {
	// Fetch returns the raw bytes of the lockfile at src. src may be a plain
	// filesystem path, a file:// URL or an http(s):// URL.
	Fetch(ctx context.Context, src string) ([]byte, error)
}
