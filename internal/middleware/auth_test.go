package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
	"fixitron/internal/httputil"
)

// countingVerifier accepts exactly "valid-token" and counts provider calls.
type countingVerifier struct {
	calls int
}

func (v *countingVerifier) VerifyToken(ctx context.Context, token string) (*models.Identity, error) {
	v.calls++
	if token != "valid-token" {
		return nil, domain.ErrUnauthorized
	}
	return &models.Identity{UID: "u1", Email: "a@x.com"}, nil
}

func (v *countingVerifier) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func protectedEcho(t *testing.T, verifier *countingVerifier) (http.Handler, *models.Identity) {
	t.Helper()
	captured := &models.Identity{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := httputil.GetIdentity(r); id != nil {
			*captured = *id
		}
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(verifier, discardLogger())(next), captured
}

func TestRequireAuthMissingHeader(t *testing.T) {
	verifier := &countingVerifier{}
	h, _ := protectedEcho(t, verifier)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/my-services", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if verifier.calls != 0 {
		t.Errorf("identity provider called %d times for missing header, want 0", verifier.calls)
	}
}

func TestRequireAuthMalformedHeaderSkipsProvider(t *testing.T) {
	verifier := &countingVerifier{}
	h, _ := protectedEcho(t, verifier)

	for _, header := range []string{"Bearer", "Bearer ", "bearer abc", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/my-services", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
	if verifier.calls != 0 {
		t.Errorf("identity provider called %d times for malformed headers, want 0", verifier.calls)
	}
}

func TestRequireAuthRejectedTokenLooksLikeMissingHeader(t *testing.T) {
	verifier := &countingVerifier{}
	h, _ := protectedEcho(t, verifier)

	missing := httptest.NewRecorder()
	h.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/my-services", nil))

	rejected := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/my-services", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	h.ServeHTTP(rejected, req)

	if rejected.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rejected.Code)
	}
	if verifier.calls != 1 {
		t.Errorf("identity provider calls = %d, want 1", verifier.calls)
	}
	// The two failure modes must be indistinguishable to the caller.
	if missing.Body.String() != rejected.Body.String() {
		t.Errorf("rejected-token body %q differs from missing-header body %q",
			rejected.Body.String(), missing.Body.String())
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	verifier := &countingVerifier{}
	h, captured := protectedEcho(t, verifier)

	req := httptest.NewRequest(http.MethodGet, "/my-services", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured.Email != "a@x.com" || captured.UID != "u1" {
		t.Errorf("identity = %+v, want uid u1 / a@x.com", captured)
	}
}
