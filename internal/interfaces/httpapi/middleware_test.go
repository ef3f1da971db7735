package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAdminPIN_AllowsMatchingPIN(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAdminPIN("1984", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", nil)
	req.Header.Set("X-Admin-Pin", "1984")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestRequireAdminPIN_RejectsWrongPIN(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run for a wrong pin")
	})
	handler := RequireAdminPIN("1984", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", nil)
	req.Header.Set("X-Admin-Pin", "0000")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireAdminPIN_RejectsMissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run without a pin")
	})
	handler := RequireAdminPIN("1984", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireAdminPIN_UnconfiguredPIN(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run when no pin is configured")
	})
	handler := RequireAdminPIN("", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", nil)
	req.Header.Set("X-Admin-Pin", "anything")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestShouldTraceRequest(t *testing.T) {
	if shouldTraceRequest("/healthz") {
		t.Fatalf("expected health route to be excluded from tracing")
	}
	if !shouldTraceRequest("/v1/events") {
		t.Fatalf("expected api route to be traced")
	}
}
