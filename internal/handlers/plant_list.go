package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
)

// PlantLister defines the interface that the service must implement.
type PlantLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.PlantDB, error)
}

// NewPlantListHandler returns an HTTP handler listing the caller's plants.
// @Summary List plants
// @Description Returns all plants owned by the authenticated user, most recently added first.
// @Tags plants
// @Produce json
// @Success 200 {array} models.PlantDB "Plants owned by the caller"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /plants [get]
// @Security BearerAuth
func NewPlantListHandler(svc PlantLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		plants, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}

		writeJSON(w, http.StatusOK, plants)
	}
}
