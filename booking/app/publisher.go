package app

import (
	"context"

	"github.com/Astemirdum/court-booking/booking/internal/queue"
	"github.com/Astemirdum/court-booking/pkg/kafka"
	"go.uber.org/zap"
)

type publisher interface {
	Publish(ctx context.Context, ev kafka.ReservationEvent) error
	Close() error
}

// newPublisher degrades to a no-op when Kafka is not configured or unreachable.
func newPublisher(cfg kafka.Config, log *zap.Logger) publisher {
	if !cfg.Enabled() {
		log.Info("kafka disabled, events are dropped")
		return queue.Nop{}
	}
	producer, err := kafka.NewSyncProducer(cfg)
	if err != nil {
		log.Warn("kafka producer, events are dropped", zap.Strings("addrs", cfg.Addrs), zap.Error(err))
		return queue.Nop{}
	}
	return queue.NewPublisher(producer, cfg.Topic, log)
}
