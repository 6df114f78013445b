package auth

import (
	"net/http"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password.")
	CodeEmailTaken         = ErrRegistry.Register("EMAIL_TAKEN", errx.TypeConflict, http.StatusConflict, "A user with this email already exists.")
	CodePasswordMismatch   = ErrRegistry.Register("PASSWORD_MISMATCH", errx.TypeValidation, http.StatusBadRequest, "Passwords do not match.")
	CodeInvalidToken       = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token.")
	CodeInvalidResetToken  = ErrRegistry.Register("INVALID_RESET_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired reset token.")
	CodeNotAuthenticated   = ErrRegistry.Register("NOT_AUTHENTICATED", errx.TypeAuthentication, http.StatusUnauthorized, "Authentication required.")
	CodeForbidden          = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions.")
)

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrEmailTaken() *errx.Error {
	return ErrRegistry.New(CodeEmailTaken)
}

func ErrPasswordMismatch() *errx.Error {
	return ErrRegistry.New(CodePasswordMismatch)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrInvalidResetToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidResetToken)
}

func ErrNotAuthenticated() *errx.Error {
	return ErrRegistry.New(CodeNotAuthenticated)
}

func ErrForbidden() *errx.Error {
	return ErrRegistry.New(CodeForbidden)
}
