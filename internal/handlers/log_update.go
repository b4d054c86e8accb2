package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
	"github.com/sbilibin2017/plant-journal/internal/services"
	"github.com/sbilibin2017/plant-journal/internal/validation"
)

// LogUpdater defines the interface that the service must implement.
type LogUpdater interface {
	Update(ctx context.Context, ownerID, logID uuid.UUID, in *models.LogUpdate) (*models.LogDB, error)
}

// NewLogUpdateHandler returns an HTTP handler partially updating one of
// the caller's care logs. The referenced plant, owner, id and timestamp
// are not part of the payload shape and cannot be changed.
// @Summary Update a log
// @Description Partially updates the caller's care log. Only log_type and sunlight_hours may change.
// @Tags logs
// @Accept json
// @Produce json
// @Param logID path string true "Log ID"
// @Param log body models.LogUpdate true "Fields to update"
// @Success 200 {object} models.LogDB "Updated log"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, all offending fields listed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Log not found"
// @Router /logs/{logID} [patch]
// @Security BearerAuth
func NewLogUpdateHandler(svc LogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		logID, ok := pathUUID(w, r, "logID", "log")
		if !ok {
			return
		}

		var req models.LogUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err)
			return
		}

		log, err := svc.Update(r.Context(), userID, logID, &req)
		if err != nil {
			switch {
			case errors.Is(err, validation.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid input", err)
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
