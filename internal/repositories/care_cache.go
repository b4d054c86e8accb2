package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
)

// CareSummaryCacheRepository caches per-plant care summaries in Redis.
// Entries expire after a short TTL; the aggregate is recomputed on miss.
type CareSummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewCareSummaryCacheRepository(client *redis.Client, expiration time.Duration) *CareSummaryCacheRepository {
	return &CareSummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func careSummaryKey(plantID uuid.UUID) string {
	return fmt.Sprintf("care_summary:%s", plantID)
}

// GetCareSummary returns the cached summary for a plant, or (nil, nil) on
// a cache miss.
func (r *CareSummaryCacheRepository) GetCareSummary(ctx context.Context, plantID uuid.UUID) (*models.CareSummary, error) {
	key := careSummaryKey(plantID)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("care summary cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("care summary cache get failed", "key", key, "error", err)
		return nil, err
	}

	var summary models.CareSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		logger.Log.Errorw("care summary cache decode failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("care summary cache hit", "key", key)
	return &summary, nil
}

// SetCareSummary stores the summary for a plant with the configured TTL.
func (r *CareSummaryCacheRepository) SetCareSummary(ctx context.Context, plantID uuid.UUID, summary *models.CareSummary) error {
	key := careSummaryKey(plantID)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("care summary cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}

// DeleteCareSummary drops the cached summary for a plant. Called after a
// new log lands so the next report reflects it immediately.
func (r *CareSummaryCacheRepository) DeleteCareSummary(ctx context.Context, plantID uuid.UUID) error {
	key := careSummaryKey(plantID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("care summary cache delete", "key", key, "error", err)

	return err
}
