package kafka

import (
	"context"
	"time"

	"github.com/iwtcode/stepperTorque/internal/config"
	"github.com/iwtcode/stepperTorque/internal/interfaces"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer создает новый экземпляр продюсера Kafka.
// Если публикация выключена, возвращается продюсер-заглушка.
func NewKafkaProducer(cfg *config.AppConfig) (interfaces.KafkaService, error) {
	if !cfg.Kafka.Enable {
		return NoopProducer{}, nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Broker),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaProducer{writer: writer}, nil
}

// Produce отправляет сообщение в Kafka
func (p *KafkaProducer) Produce(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
}

// Close закрывает соединение с Kafka
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// NoopProducer отбрасывает сообщения.
type NoopProducer struct{}

func (NoopProducer) Produce(ctx context.Context, key, value []byte) error { return nil }

func (NoopProducer) Close() error { return nil }
