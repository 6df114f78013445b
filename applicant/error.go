package applicant

import (
	"net/http"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("APPLICANT")

var (
	CodeNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Applicant not found.")
	CodeCVNotFound    = ErrRegistry.Register("CV_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "CV not found.")
	CodeNameRequired  = ErrRegistry.Register("NAME_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Applicant first and last name are required.")
	CodeInvalidEmail  = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Applicant email is invalid.")
	CodeEmptyCV       = ErrRegistry.Register("EMPTY_CV", errx.TypeValidation, http.StatusBadRequest, "CV file is empty.")
	CodeAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Applicant has already applied to this vacancy.")
)

func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrCVNotFound() *errx.Error {
	return ErrRegistry.New(CodeCVNotFound)
}

func ErrNameRequired() *errx.Error {
	return ErrRegistry.New(CodeNameRequired)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrEmptyCV() *errx.Error {
	return ErrRegistry.New(CodeEmptyCV)
}

func ErrAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAlreadyExists)
}
