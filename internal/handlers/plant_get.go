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

// PlantGetter defines the interface that the service must implement.
type PlantGetter interface {
	Get(ctx context.Context, ownerID, plantID uuid.UUID) (*models.PlantDB, error)
}

// NewPlantGetHandler returns an HTTP handler retrieving one of the
// caller's plants. A plant owned by another user is reported as not
// found, identically to a plant that does not exist.
// @Summary Retrieve a plant
// @Description Returns the caller's plant by id.
// @Tags plants
// @Produce json
// @Param plantID path string true "Plant ID"
// @Success 200 {object} models.PlantDB "The plant"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found"
// @Router /plants/{plantID} [get]
// @Security BearerAuth
func NewPlantGetHandler(svc PlantGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		plantID, ok := pathUUID(w, r, "plantID", "plant")
		if !ok {
			return
		}

		plant, err := svc.Get(r.Context(), userID, plantID)
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

		writeJSON(w, http.StatusOK, plant)
	}
}
