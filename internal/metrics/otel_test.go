package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder")
	}
	if handler != nil {
		t.Fatal("disabled telemetry must not expose a handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSetupEnabledServesPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, Port: "9090"})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer shutdown(context.Background())

	rec.RecordFetchAttempt("games", 12*time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/teams/{id}", 200, 3*time.Millisecond)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics endpoint returned %d", rr.Code)
	}
	if rr.Body.Len() == 0 {
		t.Fatal("expected a metrics exposition body")
	}
}
