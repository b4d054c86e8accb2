package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/services"
)

// LogDeleter defines the interface that the service must implement.
type LogDeleter interface {
	Delete(ctx context.Context, ownerID, logID uuid.UUID) error
}

// NewLogDeleteHandler returns an HTTP handler deleting one of the
// caller's care logs.
// @Summary Delete a log
// @Description Deletes the caller's care log by id.
// @Tags logs
// @Param logID path string true "Log ID"
// @Success 204 "Log deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Log not found"
// @Router /logs/{logID} [delete]
// @Security BearerAuth
func NewLogDeleteHandler(svc LogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		logID, ok := pathUUID(w, r, "logID", "log")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, logID); err != nil {
			switch {
			case errors.Is(err, services.ErrLogNotFound):
				writeError(w, http.StatusNotFound, "log not found", err)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
