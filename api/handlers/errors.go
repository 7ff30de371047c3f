// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	coreerrors "news-intel-api/core/errors"
)

// errorResponse is the JSON body for error replies
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps a domain error to an HTTP status and writes it
func writeError(w http.ResponseWriter, err error) {
	switch {
	case coreerrors.IsEmptyCollection(err):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "empty_collection",
			Message: err.Error(),
		})
	case coreerrors.IsPersistenceConflict(err):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:   "persistence_conflict",
			Message: err.Error(),
		})
	case coreerrors.IsExternalAPI(err):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "external_service_error",
			Message: err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

// writeBadRequest writes a 400 with the given message
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "bad_request",
		Message: message,
	})
}
