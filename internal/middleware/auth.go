package middleware

import (
	"log/slog"
	"net/http"

	"fixitron/internal/auth"
	"fixitron/internal/httputil"
)

// RequireAuth gates a route behind bearer token verification. A missing or
// malformed Authorization header fails before the identity provider is
// called; a provider rejection fails after. Both produce the exact same 401
// response so the caller cannot tell which happened. On success the
// verified identity is attached to the request context for downstream
// handlers.
func RequireAuth(verifier auth.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.ParseBearer(r.Header.Get("Authorization"))
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			identity, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logger.Debug("bearer token rejected",
					"path", r.URL.Path,
					"method", r.Method,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, identity))
		})
	}
}
