package rabbitmq_client

import (
	"context"
	"encoding/json"

	"brickscapital/types"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Publisher sends site events to a durable queue on the default exchange.
type Publisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queue      amqp.Queue
}

func Dial(url, queueName string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Declare a queue to ensure it exists before publishing messages
	q, err := ch.QueueDeclare(
		queueName, // Name of the queue
		true,      // Durable
		false,     // Delete when unused
		false,     // Exclusive
		false,     // No-wait
		nil,       // Arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	zap.L().Info("Connected to RabbitMQ.", zap.String("queue", q.Name))
	return &Publisher{connection: conn, channel: ch, queue: q}, nil
}

func (p *Publisher) Publish(_ context.Context, event types.SiteEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		"",           // Exchange (empty means default)
		p.queue.Name, // Routing key (queue name in this case)
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         event.Type,
			Timestamp:    event.CreatedAt,
			Body:         message,
		})
}

func (p *Publisher) Close() {
	if err := p.channel.Close(); err != nil {
		zap.L().Error("RabbitMQ - Failed to close channel", zap.Error(err))
	}
	if err := p.connection.Close(); err != nil {
		zap.L().Error("RabbitMQ - Failed to close connection", zap.Error(err))
	}
}
