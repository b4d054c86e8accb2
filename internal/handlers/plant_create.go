package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
	"github.com/sbilibin2017/plant-journal/internal/validation"
)

// PlantCreator defines the interface that the service must implement.
type PlantCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, in *models.PlantCreate) (*models.PlantDB, error)
}

// NewPlantCreateHandler returns an HTTP handler creating a plant owned by
// the caller. The payload shape carries no owner, id or added_at fields:
// client-supplied values for server-derived fields are dropped by decoding,
// never errors.
// @Summary Create a plant
// @Description Creates a plant owned by the authenticated user. Omitted care fields are filled from the category's care template.
// @Tags plants
// @Accept json
// @Produce json
// @Param plant body models.PlantCreate true "Plant to create"
// @Success 201 {object} models.PlantDB "Created plant, owner and id server-set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, all offending fields listed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /plants [post]
// @Security BearerAuth
func NewPlantCreateHandler(svc PlantCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req models.PlantCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err)
			return
		}

		plant, err := svc.Create(r.Context(), userID, &req)
		if err != nil {
			switch {
			case errors.Is(err, validation.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid input", err)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, plant)
	}
}
