package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
)

// securetokenJWKSURL serves the public keys Firebase signs ID tokens with.
const securetokenJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// FirebaseClaims are the registered claims plus the email claim Firebase
// puts in its ID tokens.
type FirebaseClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWKSVerifier implements TokenVerifier by validating Firebase ID tokens
// locally against Google's securetoken JWKS, without the Admin SDK.
// The JWKS keys are cached and automatically refreshed based on HTTP cache
// headers.
type JWKSVerifier struct {
	jwks      keyfunc.Keyfunc
	projectID string
	logger    *slog.Logger
}

// NewJWKSVerifier creates a verifier that fetches public keys from Google's
// securetoken JWKS endpoint.
func NewJWKSVerifier(ctx context.Context, projectID string, logger *slog.Logger) (*JWKSVerifier, error) {
	if projectID == "" {
		return nil, errors.New("firebase project ID cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{securetokenJWKSURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWKS verifier initialized", "jwks_url", securetokenJWKSURL)

	return &JWKSVerifier{
		jwks:      jwks,
		projectID: projectID,
		logger:    logger,
	}, nil
}

// VerifyToken validates a Firebase ID token and extracts the identity.
// Returns an error matching domain.ErrUnauthorized if the token is invalid,
// expired, or has incorrect claims.
func (v *JWKSVerifier) VerifyToken(ctx context.Context, tokenString string) (*models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &FirebaseClaims{}, v.jwks.Keyfunc)
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	// Prevent algorithm confusion attacks - Firebase signs with RS256 only
	if token.Method.Alg() != "RS256" {
		v.logger.Warn("token uses unexpected algorithm", "algorithm", token.Method.Alg())
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*FirebaseClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validateFirebaseClaims(claims, v.projectID); err != nil {
		v.logger.Debug("token claims rejected", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	return &models.Identity{UID: claims.Subject, Email: claims.Email}, nil
}

// validateFirebaseClaims checks the issuer, audience and identity claims a
// securetoken-issued ID token must carry for the given project.
func validateFirebaseClaims(claims *FirebaseClaims, projectID string) error {
	if claims.Subject == "" {
		return errors.New("missing subject claim")
	}
	if claims.Issuer != "https://securetoken.google.com/"+projectID {
		return fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	audienceOK := false
	for _, aud := range claims.Audience {
		if aud == projectID {
			audienceOK = true
			break
		}
	}
	if !audienceOK {
		return errors.New("audience does not include project")
	}
	if claims.Email == "" {
		return errors.New("missing email claim")
	}
	return nil
}

// Close releases resources held by the verifier. keyfunc manages its own
// refresh lifecycle, so this is a no-op for graceful shutdown compatibility.
func (v *JWKSVerifier) Close() error {
	return nil
}
