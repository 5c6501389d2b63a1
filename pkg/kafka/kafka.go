package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const ReservationTopic = "reservation-events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"reservation-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventReservationCreated       EventType = "reservation.created"
	EventReservationStatusChanged EventType = "reservation.status_changed"
	EventReservationDeleted       EventType = "reservation.deleted"
)

type ReservationEvent struct {
	Type          EventType `json:"type"`
	ReservationID int64     `json:"reserva_id,omitempty"`
	Code          string    `json:"codigo_unico,omitempty"`
	CourtID       int64     `json:"quadra_id,omitempty"`
	Date          string    `json:"data_reserva,omitempty"`
	StartTime     string    `json:"hora_inicio,omitempty"`
	Status        string    `json:"status,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
