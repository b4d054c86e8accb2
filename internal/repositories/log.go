package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
)

// LogReadRepository handles care log read operations, always filtered by
// owner before any id lookup.
type LogReadRepository struct {
	db *sqlx.DB
}

func NewLogReadRepository(db *sqlx.DB) *LogReadRepository {
	return &LogReadRepository{db: db}
}

const logColumns = `log_id, plant_id, owner_id, log_type, sunlight_hours, created_at`

// ListByOwner returns all of the owner's logs, most recent first.
func (r *LogReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.LogDB, error) {
	const query = `
		SELECT ` + logColumns + `
		FROM logs
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	logs := make([]models.LogDB, 0)
	err := r.db.SelectContext(ctx, &logs, query, ownerID)

	logger.Log.Debugw("log list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"count", len(logs),
		"error", err,
	)

	return logs, err
}

// ListByPlantID returns the owner's logs for one plant, in event order
// (oldest first).
func (r *LogReadRepository) ListByPlantID(ctx context.Context, ownerID, plantID uuid.UUID) ([]models.LogDB, error) {
	const query = `
		SELECT ` + logColumns + `
		FROM logs
		WHERE owner_id = $1 AND plant_id = $2
		ORDER BY created_at ASC
	`

	logs := make([]models.LogDB, 0)
	err := r.db.SelectContext(ctx, &logs, query, ownerID, plantID)

	logger.Log.Debugw("log list by plant",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, plantID},
		"count", len(logs),
		"error", err,
	)

	return logs, err
}

// GetByID returns the owner's log with the given id, or nil when the log
// does not exist under that owner.
func (r *LogReadRepository) GetByID(ctx context.Context, ownerID, logID uuid.UUID) (*models.LogDB, error) {
	const query = `
		SELECT ` + logColumns + `
		FROM logs
		WHERE owner_id = $1 AND log_id = $2
	`

	var log models.LogDB
	err := r.db.GetContext(ctx, &log, query, ownerID, logID)

	logger.Log.Debugw("log select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, logID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetCareSummary aggregates the owner's logs for one plant over the last
// windowDays days.
func (r *LogReadRepository) GetCareSummary(ctx context.Context, ownerID, plantID uuid.UUID, windowDays int) (*models.CareSummary, error) {
	const query = `
		SELECT
		    COUNT(*) FILTER (WHERE log_type = 'water')     AS water_count,
		    COUNT(*) FILTER (WHERE log_type = 'fertilize') AS fertilize_count,
		    COUNT(*) FILTER (WHERE log_type = 'prune')     AS prune_count,
		    AVG(sunlight_hours)                            AS avg_sunlight_hours,
		    MAX(created_at) FILTER (WHERE log_type = 'water') AS last_watering
		FROM logs
		WHERE owner_id = $1
		  AND plant_id = $2
		  AND created_at >= NOW() - ($3 * INTERVAL '1 day')
	`

	var row struct {
		WaterCount       int        `db:"water_count"`
		FertilizeCount   int        `db:"fertilize_count"`
		PruneCount       int        `db:"prune_count"`
		AvgSunlightHours *float64   `db:"avg_sunlight_hours"`
		LastWatering     *time.Time `db:"last_watering"`
	}
	err := r.db.GetContext(ctx, &row, query, ownerID, plantID, windowDays)

	logger.Log.Debugw("care summary",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, plantID, windowDays},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &models.CareSummary{
		PlantID:          plantID.String(),
		WindowDays:       windowDays,
		WaterCount:       row.WaterCount,
		FertilizeCount:   row.FertilizeCount,
		PruneCount:       row.PruneCount,
		AvgSunlightHours: row.AvgSunlightHours,
		LastWatering:     row.LastWatering,
	}, nil
}

// LogWriteRepository handles care log write operations. When a transaction
// is present in the context, all statements run inside it.
type LogWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLogWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LogWriteRepository {
	return &LogWriteRepository{db: db, txGetter: txGetter}
}

func (r *LogWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new log bound to ownerID and returns the stored row.
// The caller has already verified that ownerID owns the plant.
func (r *LogWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, in *models.LogCreate) (*models.LogDB, error) {
	const query = `
		INSERT INTO logs (log_id, plant_id, owner_id, log_type, sunlight_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + logColumns + `
	`
	args := []any{uuid.New(), in.PlantID, ownerID, in.LogType, in.SunlightHours}

	var log models.LogDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &log, query, args...)

	logger.Log.Debugw("log insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Update applies a partial update to the owner's log and returns the
// updated row, or nil when the log does not exist under that owner. The
// referenced plant, owner, id and timestamp are never touched.
func (r *LogWriteRepository) Update(ctx context.Context, ownerID, logID uuid.UUID, in *models.LogUpdate) (*models.LogDB, error) {
	const query = `
		UPDATE logs
		SET log_type       = COALESCE($3, log_type),
		    sunlight_hours = COALESCE($4, sunlight_hours)
		WHERE owner_id = $1 AND log_id = $2
		RETURNING ` + logColumns + `
	`
	args := []any{ownerID, logID, in.LogType, in.SunlightHours}

	var log models.LogDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &log, query, args...)

	logger.Log.Debugw("log update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Delete removes the owner's log. Returns whether the log existed under
// that owner.
func (r *LogWriteRepository) Delete(ctx context.Context, ownerID, logID uuid.UUID) (bool, error) {
	const query = `DELETE FROM logs WHERE owner_id = $1 AND log_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, ownerID, logID)
	if err != nil {
		logger.Log.Errorw("log delete failed", "log_id", logID, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("log delete",
		"args", []any{ownerID, logID},
		"deleted", rows,
	)

	return rows > 0, nil
}
