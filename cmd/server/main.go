package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"fixitron/internal/auth"
	"fixitron/internal/config"
	"fixitron/internal/handler"
	"fixitron/internal/middleware"
	"fixitron/internal/repository/mongodb"
	"fixitron/internal/service"
	serviceAuth "fixitron/internal/service/auth"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"auth_mode", cfg.AuthMode,
	)

	ctx := context.Background()

	// Create the token verifier for Firebase authentication
	verifier, err := newVerifier(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer verifier.Close()

	// Create the shared mongo client (one per process, released at shutdown)
	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to mongodb: %v", err)
	}
	defer client.Disconnect(ctx)

	logger.Info("database connected", "database", cfg.MongoDatabase)

	// Create repositories
	repoConfig := &mongodb.RepositoryConfig{
		DB:     db,
		Logger: logger,
	}
	serviceRepo := mongodb.NewServiceRepository(repoConfig)
	bookingRepo := mongodb.NewBookingRepository(repoConfig)
	contactRepo := mongodb.NewContactRepository(repoConfig)

	// Create services
	ownerAuthz := serviceAuth.NewServiceOwnerAuthorizer(serviceRepo)
	catalog := service.NewServiceCatalog(serviceRepo, ownerAuthz, logger)
	bookings := service.NewBookings(bookingRepo, logger)
	contacts := service.NewContacts(contactRepo, logger)

	// Create handlers
	servicesHandler := handler.NewServicesHandler(catalog, logger)
	bookingsHandler := handler.NewBookingsHandler(bookings, logger)
	contactsHandler := handler.NewContactsHandler(contacts, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Service listing routes
	mux.HandleFunc("POST /services", servicesHandler.Create)
	mux.HandleFunc("GET /services", servicesHandler.List)
	mux.Handle("GET /my-services", requireAuth(http.HandlerFunc(servicesHandler.ListMine)))
	mux.Handle("PUT /services/{id}", requireAuth(http.HandlerFunc(servicesHandler.Update)))
	mux.Handle("DELETE /services/{id}", requireAuth(http.HandlerFunc(servicesHandler.Delete)))

	// Booking routes
	mux.HandleFunc("POST /booking_details", bookingsHandler.Create)
	mux.Handle("GET /booking_details", requireAuth(http.HandlerFunc(bookingsHandler.List)))
	mux.HandleFunc("PUT /booking_details/{id}", bookingsHandler.Update)

	// Contact form
	mux.HandleFunc("POST /contact", contactsHandler.Create)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Routes
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(h)

	// CORS - must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newVerifier selects the token verifier implementation. The Admin SDK is
// the default; AUTH_MODE=jwks verifies tokens locally against Google's
// securetoken JWKS instead.
func newVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (auth.TokenVerifier, error) {
	if cfg.AuthMode == "jwks" {
		return auth.NewJWKSVerifier(ctx, cfg.FirebaseProjectID, logger)
	}
	return auth.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID, logger)
}
