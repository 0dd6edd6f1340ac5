package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models/events"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers      []string
	WriteTimeout time.Duration
	// Consecutive failures before the breaker opens.
	MaxFailures uint32
	// How long the breaker stays open before letting a trial request through.
	OpenTimeout time.Duration
}

// Publisher sends ledger events to Kafka. Each message goes to the event's
// topic, keyed by account id so events of one account stay ordered.
type Publisher struct {
	writer  MessageWriter
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
	logger  *zap.Logger
}

func NewPublisher(cfg Config, logger *zap.Logger) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           cfg.WriteTimeout,
	}, cfg, logger)
}

func NewPublisherWithWriter(writer MessageWriter, cfg Config, logger *zap.Logger) *Publisher {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	settings := gobreaker.Settings{
		Name:        "kafka",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Publisher{
		writer:  writer,
		cb:      gobreaker.NewCircuitBreaker(settings),
		timeout: cfg.WriteTimeout,
		logger:  logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.writer.WriteMessages(ctx, kafka.Message{
			Topic: event.Topic(),
			Key:   []byte(event.Key()),
			Value: data,
		})
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		p.logger.Debug("event dropped, broker unavailable", zap.String("topic", event.Topic()))
	}
	return err
}

// State reports the circuit breaker state.
func (p *Publisher) State() gobreaker.State {
	return p.cb.State()
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
