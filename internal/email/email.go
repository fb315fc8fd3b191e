package email

import (
	"context"

	"github.com/avelez-dev/agencia-backend/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Sender is the notification sink for booking events consumed by the worker.
type Sender struct {
	logger *logrus.Logger
}

func NewSender(logger *logrus.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.WithFields(logrus.Fields{
		"type":       event.Type,
		"kind":       event.Kind,
		"booking_id": event.BookingID,
		"code":       event.Code,
	}).Info("sending booking notification")
	return nil
}
