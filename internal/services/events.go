package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/plant-journal/internal/logger"
	"github.com/sbilibin2017/plant-journal/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishCareEvent publishes a care event to Kafka. Publishing is
// best-effort: failures are logged and never propagated to the caller.
func publishCareEvent(ctx context.Context, w KafkaWriter, ev models.CareEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal care event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.PlantID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish care event to Kafka", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Care event published to Kafka", "event_id", ev.EventID, "operation", ev.Operation)
	}
}
