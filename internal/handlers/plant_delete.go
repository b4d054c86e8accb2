package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/services"
)

// PlantDeleter defines the interface that the service must implement.
type PlantDeleter interface {
	Delete(ctx context.Context, ownerID, plantID uuid.UUID) error
}

// NewPlantDeleteHandler returns an HTTP handler deleting one of the
// caller's plants together with all its logs. The route runs under the
// transaction middleware, so the cascade commits or rolls back as one
// unit.
// @Summary Delete a plant
// @Description Deletes the caller's plant and all its care logs atomically.
// @Tags plants
// @Param plantID path string true "Plant ID"
// @Success 204 "Plant and its logs deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found"
// @Router /plants/{plantID} [delete]
// @Security BearerAuth
func NewPlantDeleteHandler(svc PlantDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		plantID, ok := pathUUID(w, r, "plantID", "plant")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, plantID); err != nil {
			switch {
			case errors.Is(err, services.ErrPlantNotFound):
				writeError(w, http.StatusNotFound, "plant not found", err)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
