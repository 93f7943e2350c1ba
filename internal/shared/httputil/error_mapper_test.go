package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

var (
	errMissing = errors.New("line missing")
	errState   = errors.New("invalid state")
)

func TestErrorMapperMap(t *testing.T) {
	mapper := NewErrorMapper().
		WithMapping(errMissing, http.StatusNotFound, "cart line not found").
		WithMapping(errState, http.StatusConflict, "").
		WithDefault(http.StatusTeapot, "odd")

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "nil", err: nil, status: http.StatusOK},
		{name: "mapped", err: errMissing, status: http.StatusNotFound, message: "cart line not found"},
		{name: "wrapped forwards message", err: fmt.Errorf("%w: finalize while editing", errState), status: http.StatusConflict, message: "invalid state: finalize while editing"},
		{name: "deadline", err: fmt.Errorf("wrap: %w", context.DeadlineExceeded), status: http.StatusGatewayTimeout, message: "request timeout"},
		{name: "default", err: errors.New("boom"), status: http.StatusTeapot, message: "odd"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := mapper.Map(tc.err)
			if info.Status != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, info.Status)
			}
			if info.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, info.Message)
			}
		})
	}
}

func TestErrorMapperHTTPError(t *testing.T) {
	mapper := NewErrorMapper().WithMappings(ErrorMapping{Error: errMissing, Status: http.StatusNotFound, Message: "gone"})

	httpErr := mapper.HTTPError(errMissing)
	if httpErr.Code != http.StatusNotFound {
		t.Fatalf("unexpected code %d", httpErr.Code)
	}
	if httpErr.Message != "gone" {
		t.Fatalf("unexpected message %v", httpErr.Message)
	}
}
