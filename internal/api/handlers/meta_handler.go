package handlers

import (
	"net/http"
	"time"

	"github.com/isdelr/staffdesk-be/internal/auth"
	"github.com/isdelr/staffdesk-be/internal/respond"
)

// MetaHandler serves the service index and health endpoints. Both sit
// behind the optional auth gate: anonymous callers get the plain payload,
// signed-in callers are echoed back.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Index describes the API surface.
func (h *MetaHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"message": "Employee & User Management API",
		"status":  "Server is running",
		"endpoints": map[string]string{
			"users":     "/api/v1/user",
			"employees": "/api/v1/emp",
		},
	}
	if ident, ok := auth.IdentityFrom(r.Context()); ok {
		payload["signed_in_as"] = ident.Username
	}
	respond.JSON(w, http.StatusOK, payload)
}

// Health reports liveness.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if ident, ok := auth.IdentityFrom(r.Context()); ok {
		payload["signed_in_as"] = ident.Username
	}
	respond.JSON(w, http.StatusOK, payload)
}
