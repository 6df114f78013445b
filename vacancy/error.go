package vacancy

import (
	"net/http"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("VACANCY")

var (
	CodeNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Vacancy not found.")
	CodeCategoryNotFound = ErrRegistry.Register("CATEGORY_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Category not found.")
	CodeInvalidDates     = ErrRegistry.Register("INVALID_DATES", errx.TypeValidation, http.StatusBadRequest, "Vacancy end date must be after its start date.")
	CodeTitleRequired    = ErrRegistry.Register("TITLE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Vacancy title is required.")
)

func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrCategoryNotFound() *errx.Error {
	return ErrRegistry.New(CodeCategoryNotFound)
}

func ErrInvalidDates() *errx.Error {
	return ErrRegistry.New(CodeInvalidDates)
}

func ErrTitleRequired() *errx.Error {
	return ErrRegistry.New(CodeTitleRequired)
}
