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

// PlantLogLister defines the interface that the service must implement.
type PlantLogLister interface {
	ListForPlant(ctx context.Context, ownerID, plantID uuid.UUID) ([]models.LogDB, error)
}

// NewPlantLogsHandler returns an HTTP handler listing the care logs of one
// of the caller's plants in event order. A plant that does not resolve
// under the caller's ownership is not found.
// @Summary List a plant's logs
// @Description Returns the care logs of the caller's plant, ordered by event time ascending.
// @Tags plants
// @Produce json
// @Param plantID path string true "Plant ID"
// @Success 200 {array} models.LogDB "Logs for the plant"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found"
// @Router /plants/{plantID}/logs [get]
// @Security BearerAuth
func NewPlantLogsHandler(svc PlantLogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		plantID, ok := pathUUID(w, r, "plantID", "plant")
		if !ok {
			return
		}

		logs, err := svc.ListForPlant(r.Context(), userID, plantID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlantNotFound):
				writeError(w, http.StatusNotFound, "plant not found", err)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}
