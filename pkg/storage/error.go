package storage

import (
	"net/http"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("STORAGE")

var (
	CodeNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Record not found")
	CodeConflict    = ErrRegistry.Register("CONFLICT", errx.TypeConflict, http.StatusConflict, "Record violates a uniqueness constraint")
	CodePersistence = ErrRegistry.Register("PERSISTENCE", errx.TypeInternal, http.StatusInternalServerError, "Storage operation failed")
)

func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrConflict() *errx.Error {
	return ErrRegistry.New(CodeConflict)
}

func ErrPersistence(cause error) *errx.Error {
	return ErrRegistry.New(CodePersistence).WithCause(cause)
}

// IsNotFound reports whether err is a storage or domain not-found error.
func IsNotFound(err error) bool {
	return errx.IsType(err, errx.TypeNotFound)
}
