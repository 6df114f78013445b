// Package response defines the uniform envelope every service operation
// returns. The HTTP layer maps the status classification to a status code and
// never sees raw errors.
package response

import (
	"net/http"
	"strings"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

// Status classifies a service outcome.
type Status string

const (
	StatusSuccess      Status = "SUCCESS"
	StatusNotFound     Status = "NOT_FOUND"
	StatusBadRequest   Status = "BAD_REQUEST"
	StatusUnauthorized Status = "UNAUTHORIZED"
	StatusConflict     Status = "CONFLICT"
	StatusError        Status = "ERROR"
)

// Response is the sole contract between the service layer and the HTTP layer.
type Response struct {
	Success bool   `json:"success"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

func Success(payload any) *Response {
	return &Response{Success: true, Status: StatusSuccess, Payload: payload}
}

func SuccessMessage(message string) *Response {
	return &Response{Success: true, Status: StatusSuccess, Message: message}
}

func NotFound(message string) *Response {
	return &Response{Status: StatusNotFound, Message: message}
}

func BadRequest(message string) *Response {
	return &Response{Status: StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Response {
	return &Response{Status: StatusUnauthorized, Message: message}
}

func Conflict(message string) *Response {
	return &Response{Status: StatusConflict, Message: message}
}

// Error reports an operation failure with messages aggregated from the
// underlying subsystem.
func Error(message string, details ...string) *Response {
	if len(details) > 0 {
		message = message + " " + strings.Join(details, ", ")
	}
	return &Response{Status: StatusError, Message: message}
}

// FromError converts a typed error into an envelope. Untyped errors become a
// generic failure so internals never leak to callers.
func FromError(err error) *Response {
	ex, ok := errx.AsError(err)
	if !ok {
		return Error("An unexpected error occurred.")
	}
	switch ex.Type {
	case errx.TypeNotFound:
		return NotFound(ex.Message)
	case errx.TypeValidation, errx.TypeBusiness:
		return BadRequest(ex.Message)
	case errx.TypeAuthentication:
		return Unauthorized(ex.Message)
	case errx.TypeConflict:
		return Conflict(ex.Message)
	default:
		return Error(ex.Message)
	}
}

// HTTPStatus maps the classification to the status code the API layer writes.
func (r *Response) HTTPStatus() int {
	switch r.Status {
	case StatusSuccess:
		return http.StatusOK
	case StatusNotFound:
		return http.StatusNotFound
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusUnauthorized:
		return http.StatusUnauthorized
	case StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
