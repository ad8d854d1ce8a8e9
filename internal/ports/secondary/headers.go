// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// HeaderSource defines the secondary port for reading candidate C++ headers.
type HeaderSource interface {
	// Exists reports whether a header exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// ReadHeader returns the raw text of the header at path.
	ReadHeader(ctx context.Context, path string) (string, error)
}

// ArtifactWriter defines the secondary port for writing generated files.
type ArtifactWriter interface {
	// CheckDirectory returns an error unless path is an existing, readable directory.
	CheckDirectory(ctx context.Context, path string) error

	// CreateDirectory creates path and any missing parents.
	CreateDirectory(ctx context.Context, path string) error

	// WriteFile creates or truncates path and writes content to it.
	WriteFile(ctx context.Context, path, content string) error
}
