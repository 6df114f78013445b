package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

var testRegistry = errx.NewRegistry("RESPTEST")

var (
	codeMissing  = testRegistry.Register("MISSING", errx.TypeNotFound, 404, "Thing not found.")
	codeInvalid  = testRegistry.Register("INVALID", errx.TypeValidation, 400, "Thing is invalid.")
	codeNoAccess = testRegistry.Register("NO_ACCESS", errx.TypeAuthentication, 401, "Not allowed.")
	codeTaken    = testRegistry.Register("TAKEN", errx.TypeConflict, 409, "Thing already exists.")
	codeBusted   = testRegistry.Register("BUSTED", errx.TypeInternal, 500, "Something broke.")
)

func TestFromErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status Status
	}{
		{"not found", testRegistry.New(codeMissing), StatusNotFound},
		{"validation", testRegistry.New(codeInvalid), StatusBadRequest},
		{"authentication", testRegistry.New(codeNoAccess), StatusUnauthorized},
		{"conflict", testRegistry.New(codeTaken), StatusConflict},
		{"internal", testRegistry.New(codeBusted), StatusError},
		{"untyped", errors.New("boom"), StatusError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := FromError(tc.err)
			if resp.Status != tc.status {
				t.Errorf("Status = %s, want %s", resp.Status, tc.status)
			}
			if resp.Success {
				t.Error("Success = true for an error response")
			}
		})
	}
}

func TestFromErrorHidesUntypedMessages(t *testing.T) {
	resp := FromError(errors.New("pq: connection refused"))
	if resp.Message != "An unexpected error occurred." {
		t.Errorf("Message = %q, internals leaked", resp.Message)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		resp *Response
		want int
	}{
		{Success(nil), http.StatusOK},
		{NotFound("x"), http.StatusNotFound},
		{BadRequest("x"), http.StatusBadRequest},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Conflict("x"), http.StatusConflict},
		{Error("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.resp.HTTPStatus(); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.resp.Status, got, tc.want)
		}
	}
}

func TestErrorJoinsDetails(t *testing.T) {
	resp := Error("Validation failed.", "too short", "needs a digit")
	want := "Validation failed. too short, needs a digit"
	if resp.Message != want {
		t.Errorf("Message = %q, want %q", resp.Message, want)
	}
}

func TestSuccessCarriesPayload(t *testing.T) {
	payload := []int{1, 2, 3}
	resp := Success(payload)
	if !resp.Success || resp.Status != StatusSuccess {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if got, ok := resp.Payload.([]int); !ok || len(got) != 3 {
		t.Errorf("Payload = %v, want %v", resp.Payload, payload)
	}
}
