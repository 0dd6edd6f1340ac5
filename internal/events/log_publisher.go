package events

import (
	"context"

	"github.com/sheikh-saqib/bank-account-ledger/internal/models/events"
	"go.uber.org/zap"
)

// LogPublisher writes events to the logger instead of a broker.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event events.Event) error {
	p.logger.Debug("event",
		zap.String("topic", event.Topic()),
		zap.String("key", event.Key()),
		zap.Any("payload", event),
	)
	return nil
}
