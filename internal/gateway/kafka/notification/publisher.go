package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"fulfillment/internal/entities"

	"github.com/IBM/sarama"
)

const eventHeader = "event"

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет одно намерение. Ключ сообщения получатель, чтобы уведомления
// одного пользователя шли в одну партицию по порядку. ID намерения позволяет
// потребителю отбросить повтор.
func (p *Publisher) Publish(ctx context.Context, intent entities.NotificationIntent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(toMessage(intent))
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", intent.ID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(intent.RecipientID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventHeader), Value: []byte(intent.Event.String())},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish notification %s: %w", intent.ID, err)
	}
	return nil
}
