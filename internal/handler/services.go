package handler

import (
	"log/slog"
	"net/http"

	"fixitron/internal/domain/models"
	"fixitron/internal/domain/services"
	"fixitron/internal/httputil"
)

// ServicesHandler handles service listing HTTP requests
type ServicesHandler struct {
	catalog services.ServiceCatalog
	logger  *slog.Logger
}

// NewServicesHandler creates a new service listing handler
func NewServicesHandler(catalog services.ServiceCatalog, logger *slog.Logger) *ServicesHandler {
	return &ServicesHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Create stores a new service listing
// POST /services
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if err := httputil.ParseJSON(w, r, &svc); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.catalog.Create(r.Context(), &svc)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, insertResult{Acknowledged: true, InsertedID: id})
}

// List returns listings, optionally filtered by name. The query key is
// spelled "serachParams" because that is what the deployed clients send.
// GET /services?serachParams=<text>
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("serachParams")

	result, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// ListMine returns the authenticated provider's own listings
// GET /my-services?email=<e>
func (h *ServicesHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)
	email := r.URL.Query().Get("email")

	result, err := h.catalog.ListMine(r.Context(), identity, email)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// Update modifies a listing the authenticated provider owns
// PUT /services/{id}
func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)
	id := r.PathValue("id")

	var upd models.ServiceUpdate
	if err := httputil.ParseJSON(w, r, &upd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.catalog.Update(r.Context(), identity, id, &upd); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, updateResult{Acknowledged: true, MatchedCount: 1})
}

// Delete removes a listing the authenticated provider owns
// DELETE /services/{id}
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)
	id := r.PathValue("id")

	if err := h.catalog.Delete(r.Context(), identity, id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deleteResult{Acknowledged: true, DeletedCount: 1})
}
