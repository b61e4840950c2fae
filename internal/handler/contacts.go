package handler

import (
	"log/slog"
	"net/http"

	"fixitron/internal/domain/models"
	"fixitron/internal/domain/services"
	"fixitron/internal/httputil"
)

// ContactsHandler handles contact form HTTP requests
type ContactsHandler struct {
	contacts services.Contacts
	logger   *slog.Logger
}

// NewContactsHandler creates a new contact form handler
func NewContactsHandler(contacts services.Contacts, logger *slog.Logger) *ContactsHandler {
	return &ContactsHandler{
		contacts: contacts,
		logger:   logger,
	}
}

// contactResult preserves the shape deployed clients expect from the
// contact form.
type contactResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Create stores a contact message with a server-stamped creation time
// POST /contact
func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := httputil.ParseJSON(w, r, &msg); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.contacts.Create(r.Context(), &msg)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, contactResult{Success: true, ID: id})
}
