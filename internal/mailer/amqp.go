package mailer

import (
	"context"
	"encoding/json"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AMQPPublisher struct {
	channel *amqp.Channel
}

// NewAMQPPublisher 声明队列并返回发布器，队列持久化以免消息丢失
func NewAMQPPublisher(channel *amqp.Channel) (*AMQPPublisher, error) {
	_, err := channel.QueueDeclare(
		QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &AMQPPublisher{channel: channel}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
