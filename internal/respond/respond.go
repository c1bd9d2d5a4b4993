// Package respond writes the uniform JSON payloads the API returns for both
// success and rejection paths.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// FieldError names a single failing field in a validation rejection.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rejection is the client-visible failure payload. Every rejection carries
// status:false and a human-readable message; validation rejections also
// enumerate the failing fields.
type Rejection struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// Fail writes a rejection with no field detail.
func Fail(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Rejection{Status: false, Message: message})
}

// FailFields writes a validation rejection listing every failing field.
func FailFields(w http.ResponseWriter, code int, message string, errs []FieldError) {
	JSON(w, code, Rejection{Status: false, Message: message, Errors: errs})
}
