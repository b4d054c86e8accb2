package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
	"github.com/sbilibin2017/plant-journal/internal/services"
)

// LogGetter defines the interface that the service must implement.
type LogGetter interface {
	Get(ctx context.Context, ownerID, logID uuid.UUID) (*models.LogDB, error)
}

// NewLogGetHandler returns an HTTP handler retrieving one of the caller's
// care logs. A log owned by another user is reported as not found.
// @Summary Retrieve a log
// @Description Returns the caller's care log by id.
// @Tags logs
// @Produce json
// @Param logID path string true "Log ID"
// @Success 200 {object} models.LogDB "The log"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Log not found"
// @Router /logs/{logID} [get]
// @Security BearerAuth
func NewLogGetHandler(svc LogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		logID, ok := pathUUID(w, r, "logID", "log")
		if !ok {
			return
		}

		log, err := svc.Get(r.Context(), userID, logID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLogNotFound):
				writeError(w, http.StatusNotFound, "log not found", err)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, log)
	}
}
