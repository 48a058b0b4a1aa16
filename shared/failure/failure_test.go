package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"xterminio/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil for nil error, got %v", err)
	}

	err := failure.BadRequest(errors.New("boom"))
	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}

	if err.Error() != "boom" {
		t.Errorf("expected message 'boom', got %s", err.Error())
	}
}

func TestNotFound(t *testing.T) {
	err := failure.NotFound("client not found")

	if failure.GetCode(err) != http.StatusNotFound {
		t.Errorf("expected code %d, got %d", http.StatusNotFound, failure.GetCode(err))
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "failure error",
			err:  failure.BadRequestFromString("bad input"),
			code: http.StatusBadRequest,
		},
		{
			name: "wrapped failure error",
			err:  fmt.Errorf("outer: %w", failure.NotFound("missing")),
			code: http.StatusNotFound,
		},
		{
			name: "storage unavailable",
			err:  failure.StorageUnavailable,
			code: http.StatusInternalServerError,
		},
		{
			name: "plain error defaults to internal",
			err:  errors.New("unknown"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}
