package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/plant-journal/internal/models"
)

func TestCareSummaryCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewCareSummaryCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get care summary", func(t *testing.T) {
		plantID := uuid.New()
		avg := 5.5
		watered := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
		summary := &models.CareSummary{
			PlantID:          plantID.String(),
			WindowDays:       30,
			WaterCount:       3,
			FertilizeCount:   1,
			AvgSunlightHours: &avg,
			LastWatering:     &watered,
			NeedsWater:       false,
		}

		err := repo.SetCareSummary(ctx, plantID, summary)
		assert.NoError(t, err)

		got, err := repo.GetCareSummary(ctx, plantID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, summary.PlantID, got.PlantID)
		assert.Equal(t, summary.WaterCount, got.WaterCount)
		assert.Equal(t, summary.FertilizeCount, got.FertilizeCount)
		assert.NotNil(t, got.AvgSunlightHours)
		assert.Equal(t, avg, *got.AvgSunlightHours)
		assert.NotNil(t, got.LastWatering)
		assert.True(t, watered.Equal(*got.LastWatering))
	})

	t.Run("Miss returns nil without error", func(t *testing.T) {
		got, err := repo.GetCareSummary(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete drops the entry", func(t *testing.T) {
		plantID := uuid.New()
		err := repo.SetCareSummary(ctx, plantID, &models.CareSummary{PlantID: plantID.String(), WaterCount: 1})
		assert.NoError(t, err)

		err = repo.DeleteCareSummary(ctx, plantID)
		assert.NoError(t, err)

		got, err := repo.GetCareSummary(ctx, plantID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached summary expires", func(t *testing.T) {
		plantID := uuid.New()
		err := repo.SetCareSummary(ctx, plantID, &models.CareSummary{PlantID: plantID.String(), WaterCount: 2})
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := repo.GetCareSummary(ctx, plantID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
