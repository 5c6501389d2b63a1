package queue

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Astemirdum/court-booking/pkg/circuit_breaker"
	"github.com/Astemirdum/court-booking/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	if topic == "" {
		topic = kafka.ReservationTopic
	}
	log = log.Named("queue")
	const (
		recordLength     = 10
		openTimeout      = 30 * time.Second
		percentile       = 0.5
		recoveryRequests = 3
	)
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      log,
		cb: circuit_breaker.New(recordLength, openTimeout, percentile, recoveryRequests,
			circuit_breaker.WithOnStateChange(func(from, to circuit_breaker.Status) {
				log.Warn("kafka breaker", zap.Stringer("from", from), zap.Stringer("to", to))
			}),
		),
	}
}

// Publish sends the event keyed by reservation id, so events of one reservation stay ordered.
func (p *Publisher) Publish(ctx context.Context, ev kafka.ReservationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.ReservationID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Nop drops events; used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, kafka.ReservationEvent) error { return nil }

func (Nop) Close() error { return nil }
