package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/middlewares"
)

// callerID returns the authenticated user id placed in the context by the
// auth middleware. A missing id means the route was wired without the
// middleware; the request is rejected as unauthenticated.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a uuid URL parameter. An unparseable id cannot name any
// record, so it is reported as not found rather than a validation error.
func pathUUID(w http.ResponseWriter, r *http.Request, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusNotFound, resource+" not found", nil)
		return uuid.Nil, false
	}
	return id, true
}
