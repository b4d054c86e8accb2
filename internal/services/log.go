package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
	"github.com/sbilibin2017/plant-journal/internal/validation"
)

var (
	// ErrLogNotFound is returned when a log does not exist under the
	// caller's ownership.
	ErrLogNotFound = errors.New("log not found")

	// ErrPlantForbidden is returned when a log is created against a plant
	// that exists but belongs to another user. The plant id came from the
	// caller, so naming the rejection leaks nothing.
	ErrPlantForbidden = errors.New("plant belongs to another user")
)

// PlantOwnerReader resolves a plant's owner without ownership filtering.
// It backs the forbidden-vs-not-found split on log creation.
type PlantOwnerReader interface {
	GetOwnerByID(ctx context.Context, plantID uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, ownerID, plantID uuid.UUID) (*models.PlantDB, error)
}

// LogReader defines owner-scoped read operations for care logs.
type LogReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.LogDB, error)
	ListByPlantID(ctx context.Context, ownerID, plantID uuid.UUID) ([]models.LogDB, error)
	GetByID(ctx context.Context, ownerID, logID uuid.UUID) (*models.LogDB, error)
}

// LogWriter defines write operations for care logs.
type LogWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, in *models.LogCreate) (*models.LogDB, error)
	Update(ctx context.Context, ownerID, logID uuid.UUID, in *models.LogUpdate) (*models.LogDB, error)
	Delete(ctx context.Context, ownerID, logID uuid.UUID) (bool, error)
}

// LogService handles care log CRUD. The owner of every new log is derived
// from the authenticated caller and must match the plant's owner.
type LogService struct {
	plants      PlantOwnerReader
	reader      LogReader
	writer      LogWriter
	cache       CareSummaryCache
	kafkaWriter KafkaWriter
}

// NewLogService creates a new LogService.
func NewLogService(
	plants PlantOwnerReader,
	reader LogReader,
	writer LogWriter,
	cache CareSummaryCache,
	kafkaWriter KafkaWriter,
) *LogService {
	return &LogService{
		plants:      plants,
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the owner's logs, most recent first.
func (svc *LogService) List(ctx context.Context, ownerID uuid.UUID) ([]models.LogDB, error) {
	logs, err := svc.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list logs", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return logs, nil
}

// ListForPlant returns the owner's logs for one plant in event order. A
// plant that does not resolve under the caller's ownership is not found.
func (svc *LogService) ListForPlant(ctx context.Context, ownerID, plantID uuid.UUID) ([]models.LogDB, error) {
	plant, err := svc.plants.GetByID(ctx, ownerID, plantID)
	if err != nil {
		logger.Log.Errorw("failed to resolve plant for log listing", "plant_id", plantID, "err", err)
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}

	logs, err := svc.reader.ListByPlantID(ctx, ownerID, plantID)
	if err != nil {
		logger.Log.Errorw("failed to list plant logs", "plant_id", plantID, "err", err)
		return nil, err
	}
	return logs, nil
}

// Get returns the owner's log by id.
func (svc *LogService) Get(ctx context.Context, ownerID, logID uuid.UUID) (*models.LogDB, error) {
	log, err := svc.reader.GetByID(ctx, ownerID, logID)
	if err != nil {
		logger.Log.Errorw("failed to get log", "log_id", logID, "err", err)
		return nil, err
	}
	if log == nil {
		return nil, ErrLogNotFound
	}
	return log, nil
}

// Create validates the payload and persists a log owned by ownerID.
// The referenced plant must belong to the caller: a plant owned by another
// user is forbidden, a plant that exists for nobody is not found. Nothing
// is persisted on either rejection.
func (svc *LogService) Create(ctx context.Context, ownerID uuid.UUID, in *models.LogCreate) (*models.LogDB, error) {
	if err := validation.ValidateLogCreate(in); err != nil {
		return nil, err
	}

	plantOwner, err := svc.plants.GetOwnerByID(ctx, in.PlantID)
	if err != nil {
		logger.Log.Errorw("failed to resolve plant owner", "plant_id", in.PlantID, "err", err)
		return nil, err
	}
	if plantOwner == uuid.Nil {
		return nil, ErrPlantNotFound
	}
	if plantOwner != ownerID {
		logger.Log.Warnw("log creation against foreign plant rejected",
			"plant_id", in.PlantID, "caller", ownerID)
		return nil, ErrPlantForbidden
	}

	log, err := svc.writer.Save(ctx, ownerID, in)
	if err != nil {
		logger.Log.Errorw("failed to save log", "plant_id", in.PlantID, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.DeleteCareSummary(ctx, in.PlantID); err != nil {
			logger.Log.Warnw("failed to drop cached care summary", "plant_id", in.PlantID, "err", err)
		}
	}

	publishCareEvent(ctx, svc.kafkaWriter, models.CareEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    ownerID.String(),
		PlantID:   in.PlantID.String(),
		Operation: "log_created",
		LogType:   in.LogType,
	})

	return log, nil
}

// Update validates and applies a partial update to the owner's log.
func (svc *LogService) Update(ctx context.Context, ownerID, logID uuid.UUID, in *models.LogUpdate) (*models.LogDB, error) {
	if err := validation.ValidateLogUpdate(in); err != nil {
		return nil, err
	}

	log, err := svc.writer.Update(ctx, ownerID, logID, in)
	if err != nil {
		logger.Log.Errorw("failed to update log", "log_id", logID, "err", err)
		return nil, err
	}
	if log == nil {
		return nil, ErrLogNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.DeleteCareSummary(ctx, log.PlantID); err != nil {
			logger.Log.Warnw("failed to drop cached care summary", "plant_id", log.PlantID, "err", err)
		}
	}

	return log, nil
}

// Delete removes the owner's log.
func (svc *LogService) Delete(ctx context.Context, ownerID, logID uuid.UUID) error {
	log, err := svc.reader.GetByID(ctx, ownerID, logID)
	if err != nil {
		logger.Log.Errorw("failed to get log for delete", "log_id", logID, "err", err)
		return err
	}
	if log == nil {
		return ErrLogNotFound
	}

	found, err := svc.writer.Delete(ctx, ownerID, logID)
	if err != nil {
		logger.Log.Errorw("failed to delete log", "log_id", logID, "err", err)
		return err
	}
	if !found {
		return ErrLogNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.DeleteCareSummary(ctx, log.PlantID); err != nil {
			logger.Log.Warnw("failed to drop cached care summary", "plant_id", log.PlantID, "err", err)
		}
	}

	return nil
}
