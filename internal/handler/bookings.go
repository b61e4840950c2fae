package handler

import (
	"log/slog"
	"net/http"

	"fixitron/internal/domain/models"
	"fixitron/internal/domain/services"
	"fixitron/internal/httputil"
)

// BookingsHandler handles booking HTTP requests
type BookingsHandler struct {
	bookings services.Bookings
	logger   *slog.Logger
}

// NewBookingsHandler creates a new booking handler
func NewBookingsHandler(bookings services.Bookings, logger *slog.Logger) *BookingsHandler {
	return &BookingsHandler{
		bookings: bookings,
		logger:   logger,
	}
}

// Create stores a new booking
// POST /booking_details
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b models.Booking
	if err := httputil.ParseJSON(w, r, &b); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.bookings.Create(r.Context(), &b)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, insertResult{Acknowledged: true, InsertedID: id})
}

// List returns the authenticated user's bookings
// GET /booking_details?email=<e>
func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)
	email := r.URL.Query().Get("email")

	result, err := h.bookings.ListForUser(r.Context(), identity, email)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// Update modifies a booking by id. This route is deliberately open: any
// caller may update any booking's status.
// PUT /booking_details/{id}
func (h *BookingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd models.BookingUpdate
	if err := httputil.ParseJSON(w, r, &upd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.bookings.Update(r.Context(), id, &upd); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, updateResult{Acknowledged: true, MatchedCount: 1})
}
