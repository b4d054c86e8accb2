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

// LogCreator defines the interface that the service must implement.
type LogCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, in *models.LogCreate) (*models.LogDB, error)
}

// NewLogCreateHandler returns an HTTP handler creating a care log. The
// referenced plant must belong to the caller: a plant owned by another
// user is forbidden, a plant that exists for nobody is not found. The
// payload carries no owner, id or timestamp fields.
// @Summary Create a care log
// @Description Creates a care log against one of the caller's plants. The log's owner is derived from the plant.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body models.LogCreate true "Log to create"
// @Success 201 {object} models.LogDB "Created log, owner and timestamp server-set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, all offending fields listed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Plant belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found"
// @Router /logs [post]
// @Security BearerAuth
func NewLogCreateHandler(svc LogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req models.LogCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err)
			return
		}

		log, err := svc.Create(r.Context(), userID, &req)
		if err != nil {
			switch {
			case errors.Is(err, validation.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid input", err)
			case errors.Is(err, services.ErrPlantForbidden):
				writeError(w, http.StatusForbidden, "You do not have permission to add logs to this plant", err)
			case errors.Is(err, services.ErrPlantNotFound):
				writeError(w, http.StatusNotFound, "plant not found", err)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, log)
	}
}
