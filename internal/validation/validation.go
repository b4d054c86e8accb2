package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/models"
)

// ErrInvalidInput marks any validation failure; handlers match it with
// errors.Is and respond 400.
var ErrInvalidInput = errors.New("invalid input")

// FieldError names a single offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error accumulates every offending field of a payload so a single round
// trip surfaces all problems.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error {
	return ErrInvalidInput
}

func (e *Error) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// errOrNil returns nil when no field failed, so callers can return the
// result directly.
func (e *Error) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func enumMessage(set map[string]struct{}) string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return "must be one of: " + strings.Join(values, ", ")
}

func checkEnum(e *Error, field, value string, set map[string]struct{}) {
	if _, ok := set[value]; !ok {
		e.add(field, fmt.Sprintf("invalid value %q, %s", value, enumMessage(set)))
	}
}

func checkSunlightHours(e *Error, hours *float64) {
	if hours == nil {
		return
	}
	if *hours < models.SunlightHoursMin || *hours > models.SunlightHoursMax {
		e.add("sunlight_hours", fmt.Sprintf("must be between %g and %g",
			models.SunlightHoursMin, models.SunlightHoursMax))
	}
}

// ValidatePlantCreate checks a plant creation payload. Omitted enum fields
// are allowed; the service fills them with defaults or care suggestions.
func ValidatePlantCreate(in *models.PlantCreate) error {
	e := &Error{}
	if strings.TrimSpace(in.Name) == "" {
		e.add("name", "is required")
	}
	if in.Category != "" {
		checkEnum(e, "category", in.Category, models.PlantCategories)
	}
	if in.PotSize != "" {
		checkEnum(e, "pot_size", in.PotSize, models.PotSizes)
	}
	if in.WateringSchedule != "" {
		checkEnum(e, "watering_schedule", in.WateringSchedule, models.WateringSchedules)
	}
	if in.SunlightPreference != "" {
		checkEnum(e, "sunlight_preference", in.SunlightPreference, models.SunlightPreferences)
	}
	return e.errOrNil()
}

// ValidatePlantUpdate checks a partial plant update. Only supplied fields
// are validated.
func ValidatePlantUpdate(in *models.PlantUpdate) error {
	e := &Error{}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		e.add("name", "must not be empty")
	}
	if in.Category != nil {
		checkEnum(e, "category", *in.Category, models.PlantCategories)
	}
	if in.PotSize != nil {
		checkEnum(e, "pot_size", *in.PotSize, models.PotSizes)
	}
	if in.WateringSchedule != nil {
		checkEnum(e, "watering_schedule", *in.WateringSchedule, models.WateringSchedules)
	}
	if in.SunlightPreference != nil {
		checkEnum(e, "sunlight_preference", *in.SunlightPreference, models.SunlightPreferences)
	}
	return e.errOrNil()
}

// ValidateLogCreate checks a log creation payload.
func ValidateLogCreate(in *models.LogCreate) error {
	e := &Error{}
	if in.PlantID == uuid.Nil {
		e.add("plant", "is required")
	}
	checkEnum(e, "log_type", in.LogType, models.LogTypes)
	checkSunlightHours(e, in.SunlightHours)
	return e.errOrNil()
}

// ValidateLogUpdate checks a partial log update.
func ValidateLogUpdate(in *models.LogUpdate) error {
	e := &Error{}
	if in.LogType != nil {
		checkEnum(e, "log_type", *in.LogType, models.LogTypes)
	}
	checkSunlightHours(e, in.SunlightHours)
	return e.errOrNil()
}
