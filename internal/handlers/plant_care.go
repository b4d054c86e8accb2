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

// PlantCareReporter defines the interface that the service must implement.
type PlantCareReporter interface {
	CareReport(ctx context.Context, ownerID, plantID uuid.UUID) (*models.CareSummary, error)
}

// NewPlantCareHandler returns an HTTP handler producing the care report
// for one of the caller's plants.
// @Summary Plant care report
// @Description Aggregates the plant's recent care logs: watering/fertilizing/pruning counts, average sunlight hours, last watering and whether the plant is due for water.
// @Tags plants
// @Produce json
// @Param plantID path string true "Plant ID"
// @Success 200 {object} models.CareSummary "Care summary for the plant"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found"
// @Router /plants/{plantID}/care [get]
// @Security BearerAuth
func NewPlantCareHandler(svc PlantCareReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		plantID, ok := pathUUID(w, r, "plantID", "plant")
		if !ok {
			return
		}

		summary, err := svc.CareReport(r.Context(), userID, plantID)
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

		writeJSON(w, http.StatusOK, summary)
	}
}
