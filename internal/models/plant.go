package models

import (
	"time"

	"github.com/google/uuid"
)

// Plant enum values. The sets are closed: anything outside them is
// rejected by the validation gate before persistence.
const (
	CategorySucculent     = "succulent"
	CategoryHerb          = "herb"
	CategoryFern          = "fern"
	CategoryFlowering     = "flowering_plant"
	CategoryVegetable     = "vegetable"
	CategoryFoliage       = "foliage_plant"

	PotSizeSmall  = "small"
	PotSizeMedium = "medium"
	PotSizeLarge  = "large"
	PotSizeXLarge = "x-large"
)

// Defaults applied when the client omits the field.
const (
	DefaultCategory           = CategoryFoliage
	DefaultPotSize            = PotSizeMedium
	DefaultWateringSchedule   = "weekly"
	DefaultSunlightPreference = "bright_indirect_light"
)

// PlantCategories is the closed set of valid plant categories.
var PlantCategories = map[string]struct{}{
	CategorySucculent: {},
	CategoryHerb:      {},
	CategoryFern:      {},
	CategoryFlowering: {},
	CategoryVegetable: {},
	CategoryFoliage:   {},
}

// PotSizes is the closed set of valid pot sizes.
var PotSizes = map[string]struct{}{
	PotSizeSmall:  {},
	PotSizeMedium: {},
	PotSizeLarge:  {},
	PotSizeXLarge: {},
}

// WateringSchedules is the closed set of valid watering schedules.
var WateringSchedules = map[string]struct{}{
	"daily":            {},
	"twice_weekly":     {},
	"weekly":           {},
	"biweekly":         {},
	"monthly":          {},
	"infrequent":       {},
	"moderate":         {},
	"consistent":       {},
	"when_soil_is_dry": {},
	"frequent":         {},
	"occasionally":     {},
	"none":             {},
}

// SunlightPreferences is the closed set of valid sunlight preferences.
var SunlightPreferences = map[string]struct{}{
	"full_sun":              {},
	"partial_sun":           {},
	"partial_shade":         {},
	"full_shade":            {},
	"bright_indirect_light": {},
	"indirect_light":        {},
	"low_light":             {},
	"medium_light":          {},
}

// PlantDB represents a plant record in the database.
// OwnerID is fixed at creation and never reassignable.
type PlantDB struct {
	PlantID            uuid.UUID `json:"id" db:"plant_id"`
	OwnerID            uuid.UUID `json:"owner" db:"owner_id"`
	Name               string    `json:"name" db:"name"`
	Category           string    `json:"category" db:"category"`
	CareLevel          *string   `json:"care_level" db:"care_level"`
	WateringSchedule   string    `json:"watering_schedule" db:"watering_schedule"`
	SunlightPreference string    `json:"sunlight_preference" db:"sunlight_preference"`
	Location           *string   `json:"location" db:"location"`
	PotSize            string    `json:"pot_size" db:"pot_size"`
	AddedAt            time.Time `json:"added_at" db:"added_at"`
}

// PlantCreate is the restricted input shape for creating a plant.
// Server-derived fields (id, owner, added_at) are structurally absent,
// so a client cannot set them.
type PlantCreate struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	CareLevel          *string `json:"care_level"`
	WateringSchedule   string  `json:"watering_schedule"`
	SunlightPreference string  `json:"sunlight_preference"`
	Location           *string `json:"location"`
	PotSize            string  `json:"pot_size"`
}

// PlantUpdate is the restricted input shape for partial plant updates.
// Nil pointers mean "leave unchanged".
type PlantUpdate struct {
	Name               *string `json:"name"`
	Category           *string `json:"category"`
	CareLevel          *string `json:"care_level"`
	WateringSchedule   *string `json:"watering_schedule"`
	SunlightPreference *string `json:"sunlight_preference"`
	Location           *string `json:"location"`
	PotSize            *string `json:"pot_size"`
}
