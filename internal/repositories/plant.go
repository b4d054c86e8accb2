package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
)

// PlantReadRepository handles plant read operations. Every lookup is
// filtered by owner before the id is applied, so a plant owned by someone
// else is indistinguishable from a missing plant.
type PlantReadRepository struct {
	db *sqlx.DB
}

func NewPlantReadRepository(db *sqlx.DB) *PlantReadRepository {
	return &PlantReadRepository{db: db}
}

// ListByOwner returns the owner's plants, most recently added first.
func (r *PlantReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.PlantDB, error) {
	const query = `
		SELECT plant_id, owner_id, name, category, care_level,
		       watering_schedule, sunlight_preference, location, pot_size, added_at
		FROM plants
		WHERE owner_id = $1
		ORDER BY added_at DESC
	`

	plants := make([]models.PlantDB, 0)
	err := r.db.SelectContext(ctx, &plants, query, ownerID)

	logger.Log.Debugw("plant list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"count", len(plants),
		"error", err,
	)

	return plants, err
}

// GetByID returns the owner's plant with the given id, or nil when the
// plant does not exist under that owner.
func (r *PlantReadRepository) GetByID(ctx context.Context, ownerID, plantID uuid.UUID) (*models.PlantDB, error) {
	const query = `
		SELECT plant_id, owner_id, name, category, care_level,
		       watering_schedule, sunlight_preference, location, pot_size, added_at
		FROM plants
		WHERE owner_id = $1 AND plant_id = $2
	`

	var plant models.PlantDB
	err := r.db.GetContext(ctx, &plant, query, ownerID, plantID)

	logger.Log.Debugw("plant select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, plantID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

// GetOwnerByID returns the owner of a plant without ownership filtering.
// It backs the log-creation check, where a plant owned by another user is
// reported as forbidden rather than not found. uuid.Nil means the plant
// does not exist for anyone.
func (r *PlantReadRepository) GetOwnerByID(ctx context.Context, plantID uuid.UUID) (uuid.UUID, error) {
	const query = `SELECT owner_id FROM plants WHERE plant_id = $1`

	var ownerID uuid.UUID
	err := r.db.GetContext(ctx, &ownerID, query, plantID)

	logger.Log.Debugw("plant owner select",
		"query", query,
		"args", []any{plantID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	return ownerID, nil
}

// PlantWriteRepository handles plant write operations. When a transaction
// is present in the context (TxMiddleware), all statements run inside it.
type PlantWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlantWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlantWriteRepository {
	return &PlantWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlantWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new plant bound to ownerID and returns the stored row.
func (r *PlantWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, in *models.PlantCreate) (*models.PlantDB, error) {
	const query = `
		INSERT INTO plants (plant_id, owner_id, name, category, care_level,
		                    watering_schedule, sunlight_preference, location, pot_size, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING plant_id, owner_id, name, category, care_level,
		          watering_schedule, sunlight_preference, location, pot_size, added_at
	`
	args := []any{
		uuid.New(), ownerID, in.Name, in.Category, in.CareLevel,
		in.WateringSchedule, in.SunlightPreference, in.Location, in.PotSize,
	}

	var plant models.PlantDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &plant, query, args...)

	logger.Log.Debugw("plant insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &plant, nil
}

// Update applies a partial update to the owner's plant and returns the
// updated row, or nil when the plant does not exist under that owner.
// Owner, id and added_at are never touched.
func (r *PlantWriteRepository) Update(ctx context.Context, ownerID, plantID uuid.UUID, in *models.PlantUpdate) (*models.PlantDB, error) {
	const query = `
		UPDATE plants
		SET name                = COALESCE($3, name),
		    category            = COALESCE($4, category),
		    care_level          = COALESCE($5, care_level),
		    watering_schedule   = COALESCE($6, watering_schedule),
		    sunlight_preference = COALESCE($7, sunlight_preference),
		    location            = COALESCE($8, location),
		    pot_size            = COALESCE($9, pot_size)
		WHERE owner_id = $1 AND plant_id = $2
		RETURNING plant_id, owner_id, name, category, care_level,
		          watering_schedule, sunlight_preference, location, pot_size, added_at
	`
	args := []any{
		ownerID, plantID, in.Name, in.Category, in.CareLevel,
		in.WateringSchedule, in.SunlightPreference, in.Location, in.PotSize,
	}

	var plant models.PlantDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &plant, query, args...)

	logger.Log.Debugw("plant update",
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
	return &plant, nil
}

// Delete removes the owner's plant and all its logs. Both statements run
// on the same executor, so under TxMiddleware the cascade is atomic: no
// reader can observe the plant without its logs or vice versa. Returns the
// number of logs removed and whether the plant existed under that owner.
func (r *PlantWriteRepository) Delete(ctx context.Context, ownerID, plantID uuid.UUID) (logsDeleted int64, found bool, err error) {
	const deleteLogs = `DELETE FROM logs WHERE owner_id = $1 AND plant_id = $2`
	const deletePlant = `DELETE FROM plants WHERE owner_id = $1 AND plant_id = $2`

	ex := r.executor(ctx)

	res, err := ex.ExecContext(ctx, deleteLogs, ownerID, plantID)
	if err != nil {
		logger.Log.Errorw("cascade log delete failed", "plant_id", plantID, "error", err)
		return 0, false, err
	}
	logsDeleted, _ = res.RowsAffected()

	res, err = ex.ExecContext(ctx, deletePlant, ownerID, plantID)
	if err != nil {
		logger.Log.Errorw("plant delete failed", "plant_id", plantID, "error", err)
		return 0, false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("plant delete",
		"args", []any{ownerID, plantID},
		"logs_deleted", logsDeleted,
		"plant_deleted", rows,
	)

	return logsDeleted, rows > 0, nil
}
