package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	cases := []struct {
		name string
		resp ErrorResponse
		want string
	}{
		{name: "message only", resp: ErrorResponse{Message: "listing not found"}, want: "listing not found"},
		{name: "message and details", resp: ErrorResponse{Message: "invalid limit", ErrorDetails: "limit must be a non-negative integer"}, want: "invalid limit: limit must be a non-negative integer"},
		{name: "details without message", resp: ErrorResponse{ErrorDetails: "boom"}, want: ": boom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.resp.Error(); got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	before := time.Now()
	e := NewErrorResponse("failed to fetch listings", fmt.Errorf("query: %w", errors.New("conn reset")))
	if e.Message != "failed to fetch listings" || e.ErrorDetails != "query: conn reset" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.Before(before) || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set to now: %v", e.Timestamp)
	}
	if e.Error() != "failed to fetch listings: query: conn reset" {
		t.Fatalf("unexpected Error() %q", e.Error())
	}
}

func TestErrorResponse_TravelsAsError(t *testing.T) {
	var err error = NewErrorResponse("listing not found", nil)
	wrapped := fmt.Errorf("handler: %w", err)

	var resp ErrorResponse
	if !errors.As(wrapped, &resp) || resp.Message != "listing not found" {
		t.Fatalf("ErrorResponse not recoverable with errors.As: %v", wrapped)
	}
}

func TestErrorResponse_JSONOmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(ErrorResponse{Message: "listing not found", Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"message":"listing not found","timestamp":"2024-01-02T03:04:05Z"}`
	if string(b) != want {
		t.Fatalf("want %s got %s", want, b)
	}
}
