package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/foodie-cart/internal/cfg"
	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/jitter"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const EventTypeOrderConfirmed = "order_confirmed"

// OrderConfirmedEvent — сообщение, отправляемое в топик после оформления заказа.
type OrderConfirmedEvent struct {
	EventID    string              `json:"event_id"`
	EventType  string              `json:"event_type"`
	OccurredAt string              `json:"occurred_at"`
	Order      usecase.OrderRecord `json:"order"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события заказов с повторами при временных ошибках.
type Producer struct {
	writer     messageWriter
	logger     logger.Logger
	backoff    *jitter.Backoff
	maxRetries int
}

func NewProducer(cfg *cfg.KafkaCfg, logger logger.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}

	return newProducer(writer, cfg.MaxRetries, logger)
}

func newProducer(writer messageWriter, maxRetries int, logger logger.Logger) *Producer {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Producer{
		writer:     writer,
		logger:     logger,
		backoff:    jitter.NewBackoff(200*time.Millisecond, 5*time.Second),
		maxRetries: maxRetries,
	}
}

// PublishOrderConfirmed отправляет событие о заказе. Ключ сообщения — id события.
func (p *Producer) PublishOrderConfirmed(ctx context.Context, order *domain.Order) error {
	event := OrderConfirmedEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTypeOrderConfirmed,
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
		Order:      usecase.ToOrderRecord(order),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeOrderConfirmed)},
		},
	}

	return p.writeWithRetry(ctx, msg)
}

func (p *Producer) writeWithRetry(ctx context.Context, msg kafka.Message) error {
	const op = "Producer.writeWithRetry"

	var err error
	for attempt := 0; attempt < p.maxRetries; attempt++ {
		if err = p.writer.WriteMessages(ctx, msg); err == nil {
			return nil
		}

		if !isRetryableError(err) || attempt == p.maxRetries-1 {
			break
		}

		delay := p.backoff.Delay(attempt)
		p.logger.Warnf("kafka write failed, retrying in %v (attempt %d): %v", delay, attempt+1, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return e.Wrap(op, err)
}

func (p *Producer) Close(_ context.Context) error {
	return p.writer.Close()
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var kErr kafka.Error
	if errors.As(err, &kErr) {
		return kErr.Temporary()
	}

	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}

	return false
}
