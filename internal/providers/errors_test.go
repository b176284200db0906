package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsTransientForNetworkErrors(t *testing.T) {
	err := &NetworkError{Endpoint: "games", Err: errors.New("connection refused")}
	if !IsTransient(err) {
		t.Fatal("network errors are always transient")
	}
	if !IsTransient(fmt.Errorf("wrapped: %w", err)) {
		t.Fatal("wrapped network errors are transient")
	}
}

func TestIsTransientForUpstreamStatuses(t *testing.T) {
	transient := []int{408, 409, 429, 500, 502, 503, 504}
	for _, status := range transient {
		err := &UpstreamError{Endpoint: "games", StatusCode: status}
		if !IsTransient(err) {
			t.Fatalf("status %d should be transient", status)
		}
	}

	terminal := []int{400, 401, 403, 404, 410, 422}
	for _, status := range terminal {
		err := &UpstreamError{Endpoint: "games", StatusCode: status}
		if IsTransient(err) {
			t.Fatalf("status %d should not be transient", status)
		}
	}
}

func TestMalformedResponseNeverTransient(t *testing.T) {
	err := &MalformedResponseError{Endpoint: "games", Err: errors.New("bad json")}
	if IsTransient(err) {
		t.Fatal("malformed responses must not be retried")
	}
}

func TestErrorMessages(t *testing.T) {
	upErr := &UpstreamError{Endpoint: "games", StatusCode: 502, Body: "bad gateway"}
	if got := upErr.Error(); got != "games: unexpected status 502: bad gateway" {
		t.Fatalf("unexpected message %q", got)
	}

	upErr = &UpstreamError{Endpoint: "games", StatusCode: 502}
	if got := upErr.Error(); got != "games: unexpected status 502" {
		t.Fatalf("unexpected message %q", got)
	}
}
