package models

// CareEvent is published to Kafka after a care log is created or a plant
// is deleted. Publishing is best-effort and never fails the request.
type CareEvent struct {
	EventID   string  `json:"event_id"`
	Timestamp int64   `json:"timestamp"`
	UserID    string  `json:"user_id"`
	PlantID   string  `json:"plant_id"`
	Operation string  `json:"operation"` // "log_created" or "plant_deleted"
	LogType   string  `json:"log_type,omitempty"`
	LogsSwept int     `json:"logs_swept,omitempty"` // logs removed by a cascade delete
}
