package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"formCalc/internal/domain"
	"formCalc/internal/ports"

	"github.com/segmentio/kafka-go"
)

// Consumer — обёртка над kafka.Reader: декодирует сообщения в domain.Evaluation
// и передаёт их в use case (оттуда они уходят в аналитику).
type Consumer struct {
	r   *kafka.Reader
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.ICalculatorUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Message — сообщение из Kafka (ключ, тело, топик, партиция, offset).
type Message = kafka.Message

// Run в цикле читает сообщения, декодирует JSON в domain.Evaluation, вызывает
// uc.HandleEvaluationEvent и коммитит при успехе. Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var ev domain.Evaluation
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.CommitMessage(ctx, msg)
			continue
		}

		// Offset не коммитится: сообщение вернётся после ребаланса
		// группы или рестарта, не на следующей итерации.
		if err := c.uc.HandleEvaluationEvent(ctx, ev); err != nil {
			c.log.Warn("kafka handle error, offset not committed", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			continue
		}

		if err := c.CommitMessage(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// FetchMessage блокируется до следующего сообщения; оно не коммитится
// в consumer group до вызова CommitMessage.
func (c *Consumer) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return c.r.FetchMessage(ctx)
}

// CommitMessage помечает сообщение как обработанное (для consumer group).
func (c *Consumer) CommitMessage(ctx context.Context, msg kafka.Message) error {
	return c.r.CommitMessages(ctx, msg)
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
