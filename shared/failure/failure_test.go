package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"innkeep/shared/failure"
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

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "InvalidDateParam",
			failure: failure.InvalidDateParam,
			code:    http.StatusBadRequest,
			message: "invalid date parameter, expected YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("no"), code: http.StatusUnauthorized},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("conflict"), code: http.StatusConflict},
		{name: "ReferentialIntegrity", err: failure.ReferentialIntegrity("location", "rooms"), code: http.StatusConflict},
		{name: "OverlapWarning", err: failure.OverlapWarning("Jane Doe", "2025-03-03", "2025-03-05"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("no"), code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("deleting room: %w", failure.ReferentialIntegrity("room", "bookings"))

	if got := failure.GetCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected wrapped failure to keep code %d, got %d", http.StatusConflict, got)
	}

	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain error to map to %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestIsConflict(t *testing.T) {
	if !failure.IsConflict(failure.OverlapWarning("A", "2025-01-01", "2025-01-02")) {
		t.Error("expected overlap warning to be a conflict")
	}

	if failure.IsConflict(failure.NotFound("x")) {
		t.Error("did not expect not-found to be a conflict")
	}
}
