package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/validation"
)

// ErrorResponse is the error body returned by every handler
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: plant not found
	Error string `json:"error"`

	// Offending fields, present on validation failures only
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// writeJSON writes a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Log.Errorw("failed to encode response", "err", err)
		}
	}
}

// writeError writes an error body. Validation errors carry every
// offending field so one round trip surfaces all problems.
func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}

	var verr *validation.Error
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	writeJSON(w, status, resp)
}
