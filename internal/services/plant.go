package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/care"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
	"github.com/sbilibin2017/plant-journal/internal/validation"
)

var (
	// ErrPlantNotFound is returned when a plant does not exist under the
	// caller's ownership. A plant owned by another user is deliberately
	// reported the same way.
	ErrPlantNotFound = errors.New("plant not found")
)

// Care report parameters.
const (
	careSummaryWindowDays = 30
	needsWaterThreshold   = 7 * 24 * time.Hour
)

// PlantReader defines owner-scoped read operations for plants.
type PlantReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.PlantDB, error)
	GetByID(ctx context.Context, ownerID, plantID uuid.UUID) (*models.PlantDB, error)
}

// PlantWriter defines write operations for plants.
type PlantWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, in *models.PlantCreate) (*models.PlantDB, error)
	Update(ctx context.Context, ownerID, plantID uuid.UUID, in *models.PlantUpdate) (*models.PlantDB, error)
	Delete(ctx context.Context, ownerID, plantID uuid.UUID) (logsDeleted int64, found bool, err error)
}

// CareSummaryReader aggregates a plant's recent logs.
type CareSummaryReader interface {
	GetCareSummary(ctx context.Context, ownerID, plantID uuid.UUID, windowDays int) (*models.CareSummary, error)
}

// CareSummaryCache caches care summaries.
type CareSummaryCache interface {
	GetCareSummary(ctx context.Context, plantID uuid.UUID) (*models.CareSummary, error)
	SetCareSummary(ctx context.Context, plantID uuid.UUID, summary *models.CareSummary) error
	DeleteCareSummary(ctx context.Context, plantID uuid.UUID) error
}

// PlantService handles plant CRUD, the cascade delete and the care report.
// Every operation is scoped to the authenticated owner passed in by the
// handler; the service never accepts an owner from a payload.
type PlantService struct {
	reader      PlantReader
	writer      PlantWriter
	summaries   CareSummaryReader
	cache       CareSummaryCache
	kafkaWriter KafkaWriter
}

// NewPlantService creates a new PlantService.
func NewPlantService(
	reader PlantReader,
	writer PlantWriter,
	summaries CareSummaryReader,
	cache CareSummaryCache,
	kafkaWriter KafkaWriter,
) *PlantService {
	return &PlantService{
		reader:      reader,
		writer:      writer,
		summaries:   summaries,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the owner's plants, most recently added first.
func (svc *PlantService) List(ctx context.Context, ownerID uuid.UUID) ([]models.PlantDB, error) {
	plants, err := svc.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list plants", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return plants, nil
}

// Get returns the owner's plant by id.
func (svc *PlantService) Get(ctx context.Context, ownerID, plantID uuid.UUID) (*models.PlantDB, error) {
	plant, err := svc.reader.GetByID(ctx, ownerID, plantID)
	if err != nil {
		logger.Log.Errorw("failed to get plant", "plant_id", plantID, "err", err)
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}
	return plant, nil
}

// Create validates the payload, fills defaults and care suggestions for
// omitted fields, and persists a plant owned by ownerID.
func (svc *PlantService) Create(ctx context.Context, ownerID uuid.UUID, in *models.PlantCreate) (*models.PlantDB, error) {
	if err := validation.ValidatePlantCreate(in); err != nil {
		return nil, err
	}

	if in.Category == "" {
		in.Category = models.DefaultCategory
	}
	if in.PotSize == "" {
		in.PotSize = models.DefaultPotSize
	}
	if in.WateringSchedule == "" || in.SunlightPreference == "" {
		if s, ok := care.Suggest(in.Category); ok {
			if in.WateringSchedule == "" {
				in.WateringSchedule = s.WateringSchedule
			}
			if in.SunlightPreference == "" {
				in.SunlightPreference = s.SunlightPreference
			}
		}
	}
	if in.WateringSchedule == "" {
		in.WateringSchedule = models.DefaultWateringSchedule
	}
	if in.SunlightPreference == "" {
		in.SunlightPreference = models.DefaultSunlightPreference
	}

	plant, err := svc.writer.Save(ctx, ownerID, in)
	if err != nil {
		logger.Log.Errorw("failed to save plant", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return plant, nil
}

// Update validates and applies a partial update to the owner's plant.
func (svc *PlantService) Update(ctx context.Context, ownerID, plantID uuid.UUID, in *models.PlantUpdate) (*models.PlantDB, error) {
	if err := validation.ValidatePlantUpdate(in); err != nil {
		return nil, err
	}

	plant, err := svc.writer.Update(ctx, ownerID, plantID, in)
	if err != nil {
		logger.Log.Errorw("failed to update plant", "plant_id", plantID, "err", err)
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}
	return plant, nil
}

// Delete removes the owner's plant together with all its logs and
// publishes a plant_deleted event. The repository runs both deletes on the
// request transaction, so the cascade is atomic.
func (svc *PlantService) Delete(ctx context.Context, ownerID, plantID uuid.UUID) error {
	logsDeleted, found, err := svc.writer.Delete(ctx, ownerID, plantID)
	if err != nil {
		logger.Log.Errorw("failed to delete plant", "plant_id", plantID, "err", err)
		return err
	}
	if !found {
		return ErrPlantNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.DeleteCareSummary(ctx, plantID); err != nil {
			logger.Log.Warnw("failed to drop cached care summary", "plant_id", plantID, "err", err)
		}
	}

	publishCareEvent(ctx, svc.kafkaWriter, models.CareEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    ownerID.String(),
		PlantID:   plantID.String(),
		Operation: "plant_deleted",
		LogsSwept: int(logsDeleted),
	})

	return nil
}

// CareReport returns the care summary for the owner's plant, served from
// the cache when fresh and recomputed from the logs otherwise.
func (svc *PlantService) CareReport(ctx context.Context, ownerID, plantID uuid.UUID) (*models.CareSummary, error) {
	plant, err := svc.reader.GetByID(ctx, ownerID, plantID)
	if err != nil {
		logger.Log.Errorw("failed to get plant for care report", "plant_id", plantID, "err", err)
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}

	if svc.cache != nil {
		cached, err := svc.cache.GetCareSummary(ctx, plantID)
		if err != nil {
			logger.Log.Warnw("care summary cache read failed", "plant_id", plantID, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := svc.summaries.GetCareSummary(ctx, ownerID, plantID, careSummaryWindowDays)
	if err != nil {
		logger.Log.Errorw("failed to aggregate care summary", "plant_id", plantID, "err", err)
		return nil, err
	}
	summary.NeedsWater = needsWater(summary.LastWatering, time.Now())

	if svc.cache != nil {
		if err := svc.cache.SetCareSummary(ctx, plantID, summary); err != nil {
			logger.Log.Warnw("care summary cache write failed", "plant_id", plantID, "err", err)
		}
	}

	return summary, nil
}

// needsWater reports whether the plant is due for watering: never watered,
// or last watered longer than the threshold ago.
func needsWater(lastWatering *time.Time, now time.Time) bool {
	if lastWatering == nil {
		return true
	}
	return now.Sub(*lastWatering) >= needsWaterThreshold
}
