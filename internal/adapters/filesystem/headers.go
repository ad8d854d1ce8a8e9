// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// HeaderStore implements secondary.HeaderSource and secondary.ArtifactWriter on an afero filesystem.
type HeaderStore struct {
	fs afero.Fs
}

// NewHeaderStore creates a HeaderStore. A nil fs means the OS filesystem.
func NewHeaderStore(fs afero.Fs) *HeaderStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &HeaderStore{fs: fs}
}

// Exists reports whether a regular file or directory exists at path.
func (s *HeaderStore) Exists(ctx context.Context, path string) (bool, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return exists, nil
}

// ReadHeader returns the content of the header at path.
func (s *HeaderStore) ReadHeader(ctx context.Context, path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("%s - failed to open file: %w", path, err)
	}
	return string(data), nil
}

// CheckDirectory returns an error unless path is an existing directory that can be listed.
func (s *HeaderStore) CheckDirectory(ctx context.Context, path string) error {
	isDir, err := afero.IsDir(s.fs, path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !isDir {
		return fmt.Errorf("%s: not a directory", path)
	}

	dir, err := s.fs.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer dir.Close()

	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// CreateDirectory creates path and any missing parents.
func (s *HeaderStore) CreateDirectory(ctx context.Context, path string) error {
	if err := s.fs.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("%s - failed to create directory: %w", path, err)
	}
	return nil
}

// WriteFile creates or truncates path and writes content.
func (s *HeaderStore) WriteFile(ctx context.Context, path, content string) error {
	if err := afero.WriteFile(s.fs, path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("%s - failed to open file: %w", path, err)
	}
	return nil
}
