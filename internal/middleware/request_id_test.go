package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDEchoesProvidedID(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got != "req-42" {
		t.Errorf("context request id = %q, want req-42", got)
	}
	if rec.Header().Get("X-Request-ID") != "req-42" {
		t.Errorf("response header = %q, want req-42", rec.Header().Get("X-Request-ID"))
	}
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}
}
