package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/models"
	"github.com/sbilibin2017/plant-journal/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPlantLogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	plantID := uuid.New()
	params := map[string]string{"plantID": plantID.String()}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPlantLogLister(ctrl)
		logs := []models.LogDB{
			{LogID: uuid.New(), PlantID: plantID, OwnerID: userID, LogType: models.LogTypeWater},
			{LogID: uuid.New(), PlantID: plantID, OwnerID: userID, LogType: models.LogTypePrune},
		}
		mockSvc.EXPECT().ListForPlant(gomock.Any(), userID, plantID).Return(logs, nil)

		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/plants/"+plantID.String()+"/logs", nil, userID, params)
		NewPlantLogsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []models.LogDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("foreign or missing plant is not found", func(t *testing.T) {
		mockSvc := NewMockPlantLogLister(ctrl)
		mockSvc.EXPECT().ListForPlant(gomock.Any(), userID, plantID).Return(nil, services.ErrPlantNotFound)

		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/plants/"+plantID.String()+"/logs", nil, userID, params)
		NewPlantLogsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockPlantLogLister(ctrl)

		rr := httptest.NewRecorder()
		NewPlantLogsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/plants/"+plantID.String()+"/logs", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
