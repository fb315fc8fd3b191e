package booking

import (
	"context"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/kafka"
	"github.com/sirupsen/logrus"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// publishEvent emits a booking event after the transaction has committed.
// Best effort: a publish failure is logged, never surfaced to the caller.
func publishEvent(ctx context.Context, logger *logrus.Logger, producer Producer, topic, eventType, kind string, bookingID int64, code string, totalCost float64) {
	if producer == nil || topic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		Kind:       kind,
		BookingID:  bookingID,
		Code:       code,
		TotalCost:  totalCost,
		OccurredAt: time.Now(),
	}
	if err := producer.Publish(ctx, topic, code, event); err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"event":      eventType,
			"booking_id": bookingID,
		}).Warn("failed to publish booking event")
	}
}
