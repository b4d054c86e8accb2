package models

import "time"

// CareSummary aggregates a plant's care logs over a recent window.
type CareSummary struct {
	PlantID          string     `json:"plant_id"`
	WindowDays       int        `json:"window_days"`
	WaterCount       int        `json:"water_count"`
	FertilizeCount   int        `json:"fertilize_count"`
	PruneCount       int        `json:"prune_count"`
	AvgSunlightHours *float64   `json:"avg_sunlight_hours"`
	LastWatering     *time.Time `json:"last_watering"`
	NeedsWater       bool       `json:"needs_water"`
}

// CareSuggestion is the per-category care template applied when a client
// omits watering_schedule or sunlight_preference at plant creation.
type CareSuggestion struct {
	WateringSchedule   string `json:"watering_schedule"`
	SunlightPreference string `json:"sunlight_preference"`
}
