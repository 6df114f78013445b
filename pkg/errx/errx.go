// Package errx provides registry-based, typed application errors that carry an
// HTTP projection. Domains register their error codes once and construct fresh
// error values from them at call sites.
package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an error independently of the domain that raised it.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code is a registered error template.
type Code struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry namespaces error codes for one domain.
type Registry struct {
	prefix string
}

func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines an error code within the registry's namespace.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		Code:       r.prefix + "_" + code,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// New instantiates an error from a registered code.
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.Code,
		Type:       c.Type,
		HTTPStatus: c.HTTPStatus,
		Message:    c.Message,
	}
}

// Error is a typed application error.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair for diagnostics and API responses.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse renders the error body served to clients.
func (e *Error) ToHTTPResponse() map[string]any {
	body := map[string]any{
		"error":   e.Message,
		"type":    string(e.Type),
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}

// Wrap converts an arbitrary error into an *Error of the given type. If err is
// already an *Error it is returned unchanged so the original classification
// survives wrapping at higher layers.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	var ex *Error
	if errors.As(err, &ex) {
		return ex
	}
	return &Error{
		Code:       "WRAPPED_" + string(t),
		Type:       t,
		HTTPStatus: httpStatusFor(t),
		Message:    message,
		cause:      err,
	}
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var ex *Error
	if errors.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// IsType reports whether err carries the given classification.
func IsType(err error, t Type) bool {
	ex, ok := AsError(err)
	return ok && ex.Type == t
}

func httpStatusFor(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
