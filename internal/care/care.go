package care

import "github.com/sbilibin2017/plant-journal/internal/models"

// templates maps each plant category to its suggested care settings.
// Values must stay inside the closed enum sets in internal/models.
var templates = map[string]models.CareSuggestion{
	models.CategorySucculent: {
		WateringSchedule:   "infrequent",
		SunlightPreference: "full_sun",
	},
	models.CategoryHerb: {
		WateringSchedule:   "frequent",
		SunlightPreference: "partial_sun",
	},
	models.CategoryFern: {
		WateringSchedule:   "consistent",
		SunlightPreference: "indirect_light",
	},
	models.CategoryFlowering: {
		WateringSchedule:   "moderate",
		SunlightPreference: "bright_indirect_light",
	},
	models.CategoryVegetable: {
		WateringSchedule:   "daily",
		SunlightPreference: "full_sun",
	},
	models.CategoryFoliage: {
		WateringSchedule:   "weekly",
		SunlightPreference: "bright_indirect_light",
	},
}

// Suggest returns the care template for a category, or false when the
// category has no template.
func Suggest(category string) (models.CareSuggestion, bool) {
	s, ok := templates[category]
	return s, ok
}

// Categories returns all categories that have a care template.
func Categories() []string {
	out := make([]string, 0, len(templates))
	for c := range templates {
		out = append(out, c)
	}
	return out
}
