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

// PlantUpdater defines the interface that the service must implement.
type PlantUpdater interface {
	Update(ctx context.Context, ownerID, plantID uuid.UUID, in *models.PlantUpdate) (*models.PlantDB, error)
}

// NewPlantUpdateHandler returns an HTTP handler partially updating one of
// the caller's plants. Owner, id and added_at are not part of the payload
// shape and cannot be changed.
// @Summary Update a plant
// @Description Partially updates the caller's plant. Only supplied fields change.
// @Tags plants
// @Accept json
// @Produce json
// @Param plantID path string true "Plant ID"
// @Param plant body models.PlantUpdate true "Fields to update"
// @Success 200 {object} models.PlantDB "Updated plant"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, all offending fields listed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found"
// @Router /plants/{plantID} [patch]
// @Security BearerAuth
func NewPlantUpdateHandler(svc PlantUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		plantID, ok := pathUUID(w, r, "plantID", "plant")
		if !ok {
			return
		}

		var req models.PlantUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err)
			return
		}

		plant, err := svc.Update(r.Context(), userID, plantID, &req)
		if err != nil {
			switch {
			case errors.Is(err, validation.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid input", err)
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
