package httputil

import (
	"context"
	"net/http"

	"fixitron/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	identityKey contextKey = "identity"
)

// WithIdentity attaches the verified identity to the request context.
// The identity is scoped to this request only.
func WithIdentity(r *http.Request, identity *models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, identity)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the verified identity from context, returns nil if
// the request did not pass authentication middleware.
func GetIdentity(r *http.Request) *models.Identity {
	identity, _ := r.Context().Value(identityKey).(*models.Identity)
	return identity
}
