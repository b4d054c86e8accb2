package models

import (
	"time"

	"github.com/google/uuid"
)

// Log type enum values.
const (
	LogTypeWater     = "water"
	LogTypeFertilize = "fertilize"
	LogTypePrune     = "prune"
)

// LogTypes is the closed set of valid log types.
var LogTypes = map[string]struct{}{
	LogTypeWater:     {},
	LogTypeFertilize: {},
	LogTypePrune:     {},
}

// Sunlight hours bounds, inclusive.
const (
	SunlightHoursMin = 0.0
	SunlightHoursMax = 24.0
)

// LogDB represents a care event record in the database.
// OwnerID always equals the owner of the referenced plant.
type LogDB struct {
	LogID         uuid.UUID `json:"id" db:"log_id"`
	PlantID       uuid.UUID `json:"plant" db:"plant_id"`
	OwnerID       uuid.UUID `json:"owner" db:"owner_id"`
	LogType       string    `json:"log_type" db:"log_type"`
	SunlightHours *float64  `json:"sunlight_hours" db:"sunlight_hours"`
	Timestamp     time.Time `json:"timestamp" db:"created_at"`
}

// LogCreate is the restricted input shape for creating a log.
// Owner, id and timestamp are server-set and structurally absent.
type LogCreate struct {
	PlantID       uuid.UUID `json:"plant"`
	LogType       string    `json:"log_type"`
	SunlightHours *float64  `json:"sunlight_hours"`
}

// LogUpdate is the restricted input shape for partial log updates.
// The referenced plant is writable only at creation.
type LogUpdate struct {
	LogType       *string  `json:"log_type"`
	SunlightHours *float64 `json:"sunlight_hours"`
}
