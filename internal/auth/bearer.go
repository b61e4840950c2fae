package auth

import (
	"strings"

	"fixitron/internal/domain"
)

// ParseBearer extracts the token from an Authorization header value.
// The header must be exactly "Bearer <token>": the literal scheme, one
// space, and a non-empty token. Anything else fails without touching the
// identity provider.
func ParseBearer(header string) (string, error) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" {
		return "", domain.ErrUnauthorized
	}
	return token, nil
}
