// Package fsxlocal stores files on the local filesystem under a base
// directory, created on demand.
package fsxlocal

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/fsx"
)

type LocalFileSystem struct {
	baseDir string
}

// NewLocalFileSystem roots all paths at baseDir, e.g. "Resources".
func NewLocalFileSystem(baseDir string) *LocalFileSystem {
	return &LocalFileSystem{baseDir: baseDir}
}

func (l *LocalFileSystem) resolve(path string) string {
	return filepath.Join(l.baseDir, path)
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	full := l.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fsx.ErrIO(err).WithDetail("path", full)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fsx.ErrIO(err).WithDetail("path", full)
	}
	return nil
}

func (l *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(l.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fsx.ErrFileNotFound().WithDetail("path", path)
		}
		return nil, fsx.ErrIO(err).WithDetail("path", path)
	}
	return data, nil
}

func (l *LocalFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(l.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fsx.ErrFileNotFound().WithDetail("path", path)
		}
		return nil, fsx.ErrIO(err).WithDetail("path", path)
	}
	return f, nil
}

func (l *LocalFileSystem) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(l.resolve(path)); err != nil {
		if os.IsNotExist(err) {
			return fsx.ErrFileNotFound().WithDetail("path", path)
		}
		return fsx.ErrIO(err).WithDetail("path", path)
	}
	return nil
}

func (l *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(l.resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fsx.ErrIO(err).WithDetail("path", path)
}

func (l *LocalFileSystem) Join(parts ...string) string {
	return filepath.Join(parts...)
}
