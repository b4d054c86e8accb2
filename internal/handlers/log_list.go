package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
)

// LogLister defines the interface that the service must implement.
type LogLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.LogDB, error)
}

// NewLogListHandler returns an HTTP handler listing the caller's care
// logs across all plants, most recent first.
// @Summary List logs
// @Description Returns all care logs owned by the authenticated user, most recent first.
// @Tags logs
// @Produce json
// @Success 200 {array} models.LogDB "Logs owned by the caller"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logs [get]
// @Security BearerAuth
func NewLogListHandler(svc LogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		logs, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}
