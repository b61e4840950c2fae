package handler

import (
	"errors"
	"net/http"

	"fixitron/internal/domain"
	"fixitron/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized access")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "forbidden access")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// insertResult is the body returned by create routes.
type insertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// updateResult is the body returned by update routes on success.
type updateResult struct {
	Acknowledged bool  `json:"acknowledged"`
	MatchedCount int64 `json:"matchedCount"`
}

// deleteResult is the body returned by the delete route on success.
type deleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
