package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fixitron/internal/auth"
	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
	"fixitron/internal/middleware"
	"fixitron/internal/service"
	serviceAuth "fixitron/internal/service/auth"
)

// stubVerifier accepts tokens of the form "token-<email>" and returns an
// identity with that email.
type stubVerifier struct {
	mu    sync.Mutex
	calls int
}

func (v *stubVerifier) VerifyToken(ctx context.Context, token string) (*models.Identity, error) {
	v.mu.Lock()
	v.calls++
	v.mu.Unlock()

	var email string
	if _, err := fmt.Sscanf(token, "token-%s", &email); err != nil || email == "" {
		return nil, domain.ErrUnauthorized
	}
	return &models.Identity{UID: "uid-" + email, Email: email}, nil
}

func (v *stubVerifier) Close() error { return nil }

// fakeServiceRepo is an in-memory repositories.ServiceRepository with the
// same error semantics as the mongo implementation.
type fakeServiceRepo struct {
	mu        sync.Mutex
	services  map[string]models.Service
	readCalls int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]models.Service{}}
}

func (f *fakeServiceRepo) Insert(ctx context.Context, svc *models.Service) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	svc.ID = bson.NewObjectID()
	id := svc.ID.Hex()
	f.services[id] = *svc
	return id, nil
}

func (f *fakeServiceRepo) Search(ctx context.Context, query string) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readCalls++

	out := []models.Service{}
	for _, svc := range f.services {
		if query == "" || containsFold(svc.ServiceName, query) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) ListByProvider(ctx context.Context, email string) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readCalls++

	out := []models.Service{}
	for _, svc := range f.services {
		if svc.ProviderEmail == email {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", id, domain.ErrValidation)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	svc, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	return &svc, nil
}

func (f *fakeServiceRepo) UpdateOwned(ctx context.Context, id, ownerEmail string, upd *models.ServiceUpdate) (int64, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", id, domain.ErrValidation)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	svc, ok := f.services[id]
	if !ok || svc.ProviderEmail != ownerEmail {
		return 0, nil
	}

	if upd.ServiceName != "" {
		svc.ServiceName = upd.ServiceName
	}
	if upd.ServiceImage != "" {
		svc.ServiceImage = upd.ServiceImage
	}
	if upd.Description != "" {
		svc.Description = upd.Description
	}
	if upd.ServiceArea != "" {
		svc.ServiceArea = upd.ServiceArea
	}
	if upd.Price != 0 {
		svc.Price = upd.Price
	}
	f.services[id] = svc
	return 1, nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("invalid id %q: %w", id, domain.ErrValidation)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[id]; !ok {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	delete(f.services, id)
	return nil
}

// fakeBookingRepo is an in-memory repositories.BookingRepository.
type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  map[string]models.Booking
	readCalls int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]models.Booking{}}
}

func (f *fakeBookingRepo) Insert(ctx context.Context, b *models.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = bson.NewObjectID()
	id := b.ID.Hex()
	f.bookings[id] = *b
	return id, nil
}

func (f *fakeBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readCalls++

	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.UserEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id string, upd *models.BookingUpdate) (int64, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", id, domain.ErrValidation)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return 0, nil
	}
	if upd.Status != "" {
		b.Status = upd.Status
	}
	if upd.Date != "" {
		b.Date = upd.Date
	}
	f.bookings[id] = b
	return 1, nil
}

// fakeContactRepo is an in-memory repositories.ContactRepository.
type fakeContactRepo struct {
	mu     sync.Mutex
	last   *models.ContactMessage
	failed bool
}

func (f *fakeContactRepo) Insert(ctx context.Context, msg *models.ContactMessage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		return "", errors.New("write concern error")
	}
	msg.ID = bson.NewObjectID()
	f.last = msg
	return msg.ID.Hex(), nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// testEnv wires real services and handlers over fakes, with the same
// routing as cmd/server.
type testEnv struct {
	mux      *http.ServeMux
	verifier *stubVerifier
	services *fakeServiceRepo
	bookings *fakeBookingRepo
	contacts *fakeContactRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		mux:      http.NewServeMux(),
		verifier: &stubVerifier{},
		services: newFakeServiceRepo(),
		bookings: newFakeBookingRepo(),
		contacts: &fakeContactRepo{},
	}

	var _ auth.TokenVerifier = env.verifier

	ownerAuthz := serviceAuth.NewServiceOwnerAuthorizer(env.services)
	catalog := service.NewServiceCatalog(env.services, ownerAuthz, logger)
	bookings := service.NewBookings(env.bookings, logger)
	contacts := service.NewContacts(env.contacts, logger)

	servicesHandler := NewServicesHandler(catalog, logger)
	bookingsHandler := NewBookingsHandler(bookings, logger)
	contactsHandler := NewContactsHandler(contacts, logger)

	requireAuth := middleware.RequireAuth(env.verifier, logger)

	env.mux.HandleFunc("GET /health", HealthCheck)
	env.mux.HandleFunc("POST /services", servicesHandler.Create)
	env.mux.HandleFunc("GET /services", servicesHandler.List)
	env.mux.Handle("GET /my-services", requireAuth(http.HandlerFunc(servicesHandler.ListMine)))
	env.mux.Handle("PUT /services/{id}", requireAuth(http.HandlerFunc(servicesHandler.Update)))
	env.mux.Handle("DELETE /services/{id}", requireAuth(http.HandlerFunc(servicesHandler.Delete)))
	env.mux.HandleFunc("POST /booking_details", bookingsHandler.Create)
	env.mux.Handle("GET /booking_details", requireAuth(http.HandlerFunc(bookingsHandler.List)))
	env.mux.HandleFunc("PUT /booking_details/{id}", bookingsHandler.Update)
	env.mux.HandleFunc("POST /contact", contactsHandler.Create)

	return env
}
