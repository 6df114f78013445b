package screening

import (
	"net/http"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SCREENING")

var (
	CodeQuestionNotFound = ErrRegistry.Register("QUESTION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Question not found.")
	CodeTextRequired     = ErrRegistry.Register("TEXT_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Question text is required.")
	CodeTooFewOptions    = ErrRegistry.Register("TOO_FEW_OPTIONS", errx.TypeValidation, http.StatusBadRequest, "A question needs at least two answer options.")
	CodeNoCorrectOption  = ErrRegistry.Register("NO_CORRECT_OPTION", errx.TypeValidation, http.StatusBadRequest, "A question needs at least one correct answer option.")
	CodeAlreadyAssigned  = ErrRegistry.Register("ALREADY_ASSIGNED", errx.TypeConflict, http.StatusConflict, "Question is already assigned to this vacancy.")
	CodeTestFull         = ErrRegistry.Register("TEST_FULL", errx.TypeBusiness, http.StatusBadRequest, "Vacancy test already has its configured number of questions.")
	CodeNoTest           = ErrRegistry.Register("NO_TEST", errx.TypeNotFound, http.StatusNotFound, "No test questions assigned to this vacancy.")
	CodeAlreadySubmitted = ErrRegistry.Register("ALREADY_SUBMITTED", errx.TypeConflict, http.StatusConflict, "Applicant has already submitted this test.")
	CodeInvalidAnswer    = ErrRegistry.Register("INVALID_ANSWER", errx.TypeValidation, http.StatusBadRequest, "Submitted answer does not belong to the question.")
)

func ErrQuestionNotFound() *errx.Error {
	return ErrRegistry.New(CodeQuestionNotFound)
}

func ErrTextRequired() *errx.Error {
	return ErrRegistry.New(CodeTextRequired)
}

func ErrTooFewOptions() *errx.Error {
	return ErrRegistry.New(CodeTooFewOptions)
}

func ErrNoCorrectOption() *errx.Error {
	return ErrRegistry.New(CodeNoCorrectOption)
}

func ErrAlreadyAssigned() *errx.Error {
	return ErrRegistry.New(CodeAlreadyAssigned)
}

func ErrTestFull() *errx.Error {
	return ErrRegistry.New(CodeTestFull)
}

func ErrNoTest() *errx.Error {
	return ErrRegistry.New(CodeNoTest)
}

func ErrAlreadySubmitted() *errx.Error {
	return ErrRegistry.New(CodeAlreadySubmitted)
}

func ErrInvalidAnswer() *errx.Error {
	return ErrRegistry.New(CodeInvalidAnswer)
}
