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

func setupPlantPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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

func insertTestUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	err := db.Get(&userID,
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, 'hash') RETURNING user_id",
		username, username+"@example.com")
	assert.NoError(t, err)
	return userID
}

func insertTestPlant(t *testing.T, db *sqlx.DB, ownerID uuid.UUID, name string, addedAt time.Time) uuid.UUID {
	t.Helper()

	var plantID uuid.UUID
	err := db.Get(&plantID,
		"INSERT INTO plants (owner_id, name, added_at) VALUES ($1, $2, $3) RETURNING plant_id",
		ownerID, name, addedAt)
	assert.NoError(t, err)
	return plantID
}

func TestPlantReadRepository_ListByOwner(t *testing.T) {
	db, teardown := setupPlantPostgresContainer(t)
	defer teardown()

	repo := NewPlantReadRepository(db)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")

	now := time.Now().UTC()
	insertTestPlant(t, db, alice, "old fern", now.Add(-2*time.Hour))
	insertTestPlant(t, db, alice, "new cactus", now)
	insertTestPlant(t, db, bob, "bobs basil", now)

	t.Run("only own plants, newest first", func(t *testing.T) {
		plants, err := repo.ListByOwner(ctx, alice)
		assert.NoError(t, err)
		assert.Len(t, plants, 2)
		assert.Equal(t, "new cactus", plants[0].Name)
		assert.Equal(t, "old fern", plants[1].Name)
	})

	t.Run("empty collection is an empty slice", func(t *testing.T) {
		carol := insertTestUser(t, db, "carol")
		plants, err := repo.ListByOwner(ctx, carol)
		assert.NoError(t, err)
		assert.NotNil(t, plants)
		assert.Empty(t, plants)
	})
}

func TestPlantReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPlantPostgresContainer(t)
	defer teardown()

	repo := NewPlantReadRepository(db)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())

	t.Run("owner sees own plant", func(t *testing.T) {
		plant, err := repo.GetByID(ctx, alice, plantID)
		assert.NoError(t, err)
		assert.NotNil(t, plant)
		assert.Equal(t, "monstera", plant.Name)
		assert.Equal(t, alice, plant.OwnerID)
	})

	t.Run("foreign plant reads as missing", func(t *testing.T) {
		plant, err := repo.GetByID(ctx, bob, plantID)
		assert.NoError(t, err)
		assert.Nil(t, plant)
	})

	t.Run("unknown id", func(t *testing.T) {
		plant, err := repo.GetByID(ctx, alice, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, plant)
	})
}

func TestPlantReadRepository_GetOwnerByID(t *testing.T) {
	db, teardown := setupPlantPostgresContainer(t)
	defer teardown()

	repo := NewPlantReadRepository(db)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())

	t.Run("returns owner regardless of caller", func(t *testing.T) {
		ownerID, err := repo.GetOwnerByID(ctx, plantID)
		assert.NoError(t, err)
		assert.Equal(t, alice, ownerID)
	})

	t.Run("unknown plant is uuid.Nil", func(t *testing.T) {
		ownerID, err := repo.GetOwnerByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Equal(t, uuid.Nil, ownerID)
	})
}

func TestPlantWriteRepository_Save(t *testing.T) {
	db, teardown := setupPlantPostgresContainer(t)
	defer teardown()

	repo := NewPlantWriteRepository(db, nil)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")

	location := "kitchen window"
	plant, err := repo.Save(ctx, alice, &models.PlantCreate{
		Name:               "aloe",
		Category:           models.CategorySucculent,
		WateringSchedule:   "infrequent",
		SunlightPreference: "full_sun",
		Location:           &location,
		PotSize:            models.PotSizeSmall,
	})
	assert.NoError(t, err)
	assert.NotNil(t, plant)
	assert.NotEqual(t, uuid.Nil, plant.PlantID)
	assert.Equal(t, alice, plant.OwnerID)
	assert.Equal(t, "aloe", plant.Name)
	assert.Equal(t, models.CategorySucculent, plant.Category)
	assert.Equal(t, "infrequent", plant.WateringSchedule)
	assert.Equal(t, "full_sun", plant.SunlightPreference)
	assert.Equal(t, models.PotSizeSmall, plant.PotSize)
	assert.NotNil(t, plant.Location)
	assert.Equal(t, location, *plant.Location)
	assert.False(t, plant.AddedAt.IsZero())
}

func TestPlantWriteRepository_Update(t *testing.T) {
	db, teardown := setupPlantPostgresContainer(t)
	defer teardown()

	repo := NewPlantWriteRepository(db, nil)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		name := "swiss cheese plant"
		plant, err := repo.Update(ctx, alice, plantID, &models.PlantUpdate{Name: &name})
		assert.NoError(t, err)
		assert.NotNil(t, plant)
		assert.Equal(t, "swiss cheese plant", plant.Name)
		assert.Equal(t, "foliage_plant", plant.Category)
		assert.Equal(t, "weekly", plant.WateringSchedule)
		assert.Equal(t, alice, plant.OwnerID)
	})

	t.Run("foreign plant updates nothing", func(t *testing.T) {
		name := "stolen"
		plant, err := repo.Update(ctx, bob, plantID, &models.PlantUpdate{Name: &name})
		assert.NoError(t, err)
		assert.Nil(t, plant)

		var current string
		err = db.Get(&current, "SELECT name FROM plants WHERE plant_id=$1", plantID)
		assert.NoError(t, err)
		assert.Equal(t, "swiss cheese plant", current)
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "ghost"
		plant, err := repo.Update(ctx, alice, uuid.New(), &models.PlantUpdate{Name: &name})
		assert.NoError(t, err)
		assert.Nil(t, plant)
	})
}

func TestPlantWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPlantPostgresContainer(t)
	defer teardown()

	repo := NewPlantWriteRepository(db, nil)
	ctx := context.Background()

	alice := insertTestUser(t, db, "alice")
	bob := insertTestUser(t, db, "bob")
	plantID := insertTestPlant(t, db, alice, "monstera", time.Now())

	for i := 0; i < 3; i++ {
		_, err := db.Exec(
			"INSERT INTO logs (plant_id, owner_id, log_type) VALUES ($1, $2, 'water')",
			plantID, alice)
		assert.NoError(t, err)
	}

	t.Run("foreign plant is untouched", func(t *testing.T) {
		logsDeleted, found, err := repo.Delete(ctx, bob, plantID)
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, logsDeleted)
	})

	t.Run("delete sweeps the plant's logs", func(t *testing.T) {
		logsDeleted, found, err := repo.Delete(ctx, alice, plantID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(3), logsDeleted)

		var logCount int
		err = db.Get(&logCount, "SELECT COUNT(*) FROM logs WHERE plant_id=$1", plantID)
		assert.NoError(t, err)
		assert.Zero(t, logCount)

		var plantCount int
		err = db.Get(&plantCount, "SELECT COUNT(*) FROM plants WHERE plant_id=$1", plantID)
		assert.NoError(t, err)
		assert.Zero(t, plantCount)
	})

	t.Run("unknown id", func(t *testing.T) {
		logsDeleted, found, err := repo.Delete(ctx, alice, uuid.New())
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, logsDeleted)
	})
}
