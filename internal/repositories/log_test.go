package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/plant-journal/internal/models"
)

func setupLogPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS plants (
		plant_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		category VARCHAR(50) NOT NULL DEFAULT 'foliage_plant',
		care_level VARCHAR(50),
		watering_schedule VARCHAR(50) NOT NULL DEFAULT 'weekly',
		sunlight_preference VARCHAR(50) NOT NULL DEFAULT 'bright_indirect_light',
		location VARCHAR(100),
		pot_size VARCHAR(10) NOT NULL DEFAULT 'medium',
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS logs (
		log_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plant_id UUID NOT NULL REFERENCES plants (plant_id) ON DELETE CASCADE,
		owner_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		log_type VARCHAR(20) NOT NULL,
		sunlight_hours DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertTestLog(t *testing.T, db *sqlx.DB, ownerID, plantID uuid.UUID, logType string, hours *float64, createdAt time.Time) uuid.UUID {
	t.Helper()

	var logID uuid.UUID
	err := db.Get(&logID,
		"INSERT INTO logs (plant_id, owner_id, log_type, sunlight_hours, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING log_id",
		plantID, ownerID, logType, hours, createdAt)
	assert.NoError(t, err)
	return logID
}

func TestLogReadRepository_ListByOwner(t *testing.T) {
	db, teardown := setupLogPostgresContainer(t)
	defer teardown()

	repo := NewLogReadRepository(db)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	alicePlant := insertTestPlant(t, db, alice, "monstera", time.Now())
	bobPlant := insertTestPlant(t, db, bob, "basil", time.Now())

	now := time.Now().UTC()
	insertTestLog(t, db, alice, alicePlant, models.LogTypeWater, nil, now.Add(-2*time.Hour))
	insertTestLog(t, db, alice, alicePlant, models.LogTypePrune, nil, now)
	insertTestLog(t, db, bob, bobPlant, models.LogTypeWater, nil, now)

	t.Run("only own logs, newest first", func(t *testing.T) {
		logs, err := repo.ListByOwner(ctx, alice)
		assert.NoError(t, err)
		assert.Len(t, logs, 2)
		assert.Equal(t, models.LogTypePrune, logs[0].LogType)
		assert.Equal(t, models.LogTypeWater, logs[1].LogType)
	})

	t.Run("empty collection is an empty slice", func(t *testing.T) {
		carol := insertTestUser(t, db, "carol")
		logs, err := repo.ListByOwner(ctx, carol)
		assert.NoError(t, err)
		assert.NotNil(t, logs)
		assert.Empty(t, logs)
	})
}

func TestLogReadRepository_ListByPlantID(t *testing.T) {
	db, teardown := setupLogPostgresContainer(t)
	defer teardown()

	repo := NewLogReadRepository(db)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())
	otherPlant := insertTestPlant(t, db, alice, "fern", time.Now())

	now := time.Now().UTC()
	insertTestLog(t, db, alice, plantID, models.LogTypePrune, nil, now)
	insertTestLog(t, db, alice, plantID, models.LogTypeWater, nil, now.Add(-2*time.Hour))
	insertTestLog(t, db, alice, otherPlant, models.LogTypeWater, nil, now)

	t.Run("plant history in event order", func(t *testing.T) {
		logs, err := repo.ListByPlantID(ctx, alice, plantID)
		assert.NoError(t, err)
		assert.Len(t, logs, 2)
		assert.Equal(t, models.LogTypeWater, logs[0].LogType)
		assert.Equal(t, models.LogTypePrune, logs[1].LogType)
	})

	t.Run("foreign owner sees nothing", func(t *testing.T) {
		logs, err := repo.ListByPlantID(ctx, bob, plantID)
		assert.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestLogReadRepository_GetByID(t *testing.T) {
	db, teardown := setupLogPostgresContainer(t)
	defer teardown()

	repo := NewLogReadRepository(db)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())
	hours := 6.5
	logID := insertTestLog(t, db, alice, plantID, models.LogTypeWater, &hours, time.Now())

	t.Run("owner sees own log", func(t *testing.T) {
		log, err := repo.GetByID(ctx, alice, logID)
		assert.NoError(t, err)
		assert.NotNil(t, log)
		assert.Equal(t, plantID, log.PlantID)
		assert.Equal(t, models.LogTypeWater, log.LogType)
		assert.NotNil(t, log.SunlightHours)
		assert.Equal(t, hours, *log.SunlightHours)
	})

	t.Run("foreign log reads as missing", func(t *testing.T) {
		log, err := repo.GetByID(ctx, bob, logID)
		assert.NoError(t, err)
		assert.Nil(t, log)
	})

	t.Run("unknown id", func(t *testing.T) {
		log, err := repo.GetByID(ctx, alice, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, log)
	})
}

func TestLogReadRepository_GetCareSummary(t *testing.T) {
	db, teardown := setupLogPostgresContainer(t)
	defer teardown()

	repo := NewLogReadRepository(db)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())

	now := time.Now().UTC()
	fourHours := 4.0
	eightHours := 8.0
	lastWatering := now.Add(-24 * time.Hour)
	insertTestLog(t, db, alice, plantID, models.LogTypeWater, &fourHours, lastWatering)
	insertTestLog(t, db, alice, plantID, models.LogTypeWater, nil, now.Add(-5*24*time.Hour))
	insertTestLog(t, db, alice, plantID, models.LogTypeFertilize, &eightHours, now.Add(-10*24*time.Hour))
	// Outside the 30-day window.
	insertTestLog(t, db, alice, plantID, models.LogTypeWater, nil, now.Add(-40*24*time.Hour))
	insertTestLog(t, db, alice, plantID, models.LogTypePrune, nil, now.Add(-40*24*time.Hour))

	t.Run("aggregates within the window", func(t *testing.T) {
		summary, err := repo.GetCareSummary(ctx, alice, plantID, 30)
		assert.NoError(t, err)
		assert.Equal(t, plantID.String(), summary.PlantID)
		assert.Equal(t, 30, summary.WindowDays)
		assert.Equal(t, 2, summary.WaterCount)
		assert.Equal(t, 1, summary.FertilizeCount)
		assert.Equal(t, 0, summary.PruneCount)
		assert.NotNil(t, summary.AvgSunlightHours)
		assert.InDelta(t, 6.0, *summary.AvgSunlightHours, 0.001)
		assert.NotNil(t, summary.LastWatering)
		assert.WithinDuration(t, lastWatering, *summary.LastWatering, time.Second)
	})

	t.Run("foreign owner gets an empty summary", func(t *testing.T) {
		summary, err := repo.GetCareSummary(ctx, bob, plantID, 30)
		assert.NoError(t, err)
		assert.Zero(t, summary.WaterCount)
		assert.Zero(t, summary.FertilizeCount)
		assert.Zero(t, summary.PruneCount)
		assert.Nil(t, summary.AvgSunlightHours)
		assert.Nil(t, summary.LastWatering)
	})
}

func TestLogWriteRepository_Save(t *testing.T) {
	db, teardown := setupLogPostgresContainer(t)
	defer teardown()

	repo := NewLogWriteRepository(db, nil)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())

	hours := 5.0
	log, err := repo.Save(ctx, alice, &models.LogCreate{
		PlantID:       plantID,
		LogType:       models.LogTypeFertilize,
		SunlightHours: &hours,
	})
	assert.NoError(t, err)
	assert.NotNil(t, log)
	assert.NotEqual(t, uuid.Nil, log.LogID)
	assert.Equal(t, plantID, log.PlantID)
	assert.Equal(t, alice, log.OwnerID)
	assert.Equal(t, models.LogTypeFertilize, log.LogType)
	assert.NotNil(t, log.SunlightHours)
	assert.Equal(t, hours, *log.SunlightHours)
	assert.False(t, log.Timestamp.IsZero())
}

func TestLogWriteRepository_Update(t *testing.T) {
	db, teardown := setupLogPostgresContainer(t)
	defer teardown()

	repo := NewLogWriteRepository(db, nil)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())
	hours := 3.0
	logID := insertTestLog(t, db, alice, plantID, models.LogTypeWater, &hours, time.Now())

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		logType := models.LogTypePrune
		log, err := repo.Update(ctx, alice, logID, &models.LogUpdate{LogType: &logType})
		assert.NoError(t, err)
		assert.NotNil(t, log)
		assert.Equal(t, models.LogTypePrune, log.LogType)
		assert.NotNil(t, log.SunlightHours)
		assert.Equal(t, hours, *log.SunlightHours)
		assert.Equal(t, plantID, log.PlantID)
	})

	t.Run("foreign log updates nothing", func(t *testing.T) {
		logType := models.LogTypeFertilize
		log, err := repo.Update(ctx, bob, logID, &models.LogUpdate{LogType: &logType})
		assert.NoError(t, err)
		assert.Nil(t, log)
	})

	t.Run("unknown id", func(t *testing.T) {
		logType := models.LogTypeWater
		log, err := repo.Update(ctx, alice, uuid.New(), &models.LogUpdate{LogType: &logType})
		assert.NoError(t, err)
		assert.Nil(t, log)
	})
}

func TestLogWriteRepository_Delete(t *testing.T) {
	db, teardown := setupLogPostgresContainer(t)
	defer teardown()

	repo := NewLogWriteRepository(db, nil)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())
	logID := insertTestLog(t, db, alice, plantID, models.LogTypeWater, nil, time.Now())

	t.Run("foreign log is untouched", func(t *testing.T) {
		found, err := repo.Delete(ctx, bob, logID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("owner deletes own log", func(t *testing.T) {
		found, err := repo.Delete(ctx, alice, logID)
		assert.NoError(t, err)
		assert.True(t, found)

		var count int
		err = db.Get(&count, "SELECT COUNT(*) FROM logs WHERE log_id=$1", logID)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unknown id", func(t *testing.T) {
		found, err := repo.Delete(ctx, alice, uuid.New())
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
