package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
)

// FirebaseVerifier implements TokenVerifier using the Firebase Admin SDK.
// Every request is verified against Firebase independently; verification
// results are never cached across requests.
type FirebaseVerifier struct {
	client *fbauth.Client
	logger *slog.Logger
}

// NewFirebaseVerifier creates a verifier backed by the Firebase Admin SDK.
// Credentials are resolved the usual way (GOOGLE_APPLICATION_CREDENTIALS or
// ambient service account).
func NewFirebaseVerifier(ctx context.Context, projectID string, logger *slog.Logger) (*FirebaseVerifier, error) {
	if projectID == "" {
		return nil, errors.New("firebase project ID cannot be empty")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firebase auth client: %w", err)
	}

	logger.Info("firebase verifier initialized", "project_id", projectID)

	return &FirebaseVerifier{
		client: client,
		logger: logger,
	}, nil
}

// VerifyToken validates a Firebase ID token and extracts the identity.
// All rejection causes collapse into the same unauthorized outcome so the
// caller cannot tell a malformed token from an expired or revoked one.
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (*models.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Debug("token verification failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		v.logger.Debug("token missing email claim", "uid", decoded.UID)
		return nil, domain.ErrUnauthorized
	}

	return &models.Identity{UID: decoded.UID, Email: email}, nil
}

// Close releases resources held by the verifier. The Admin SDK manages its
// own HTTP connections, so this is a no-op for graceful shutdown
// compatibility.
func (v *FirebaseVerifier) Close() error {
	return nil
}
