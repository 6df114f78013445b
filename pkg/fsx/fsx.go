// Package fsx abstracts file storage so services do not care whether CV files
// live on local disk or in an object store.
package fsx

import (
	"context"
	"io"
	"net/http"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

// FileSystem is the storage contract consumed by services.
type FileSystem interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	Join(parts ...string) string
}

var ErrRegistry = errx.NewRegistry("FSX")

var (
	CodeFileNotFound = ErrRegistry.Register("FILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "File not found")
	CodeIO           = ErrRegistry.Register("IO", errx.TypeExternal, http.StatusBadGateway, "File storage operation failed")
)

func ErrFileNotFound() *errx.Error {
	return ErrRegistry.New(CodeFileNotFound)
}

func ErrIO(cause error) *errx.Error {
	return ErrRegistry.New(CodeIO).WithCause(cause)
}
