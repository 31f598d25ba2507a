package kafka_client

import (
	"context"
	"encoding/json"
	"time"

	"brickscapital/types"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

const (
	topicPartitions   = 1
	replicationFactor = 1
	flushTimeoutMs    = 5000
)

// Producer publishes site events to a single topic.
type Producer struct {
	producer *kafka.Producer
	topic    string
}

func NewProducer(bootstrapServers, topic string) (*Producer, error) {
	zap.L().Info("KAFKA_BOOTSTRAPSERVERS: ", zap.String("uri", bootstrapServers))

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": bootstrapServers,
		"client.id":         "brickscapital-site",
		"acks":              "all",
	})
	if err != nil {
		return nil, err
	}

	if err := ensureTopic(bootstrapServers, topic); err != nil {
		zap.L().Error("Failed to create topic: ", zap.String("topic", topic), zap.Error(err))
	}

	// Delivery report handler for produced messages
	go func() {
		for e := range producer.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					zap.L().Error("Kafka Delivery failed: ", zap.Any("error", ev.TopicPartition.Error.Error()))
				} else {
					zap.L().Sugar().Debugf("Delivered message to %s", *ev.TopicPartition.Topic)
				}
			}
		}
	}()

	return &Producer{producer: producer, topic: topic}, nil
}

func ensureTopic(bootstrapServers, topic string) error {
	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": bootstrapServers,
	})
	if err != nil {
		return err
	}
	defer admin.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	results, err := admin.CreateTopics(
		ctx,
		[]kafka.TopicSpecification{{
			Topic:             topic,
			NumPartitions:     topicPartitions,
			ReplicationFactor: replicationFactor}},
		kafka.SetAdminOperationTimeout(60*time.Second))
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Error.Code() != kafka.ErrNoError && r.Error.Code() != kafka.ErrTopicAlreadyExists {
			return r.Error
		}
	}
	return nil
}

// Publish enqueues the event; delivery is reported asynchronously.
func (p *Producer) Publish(_ context.Context, event types.SiteEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.Type),
		Value:          message,
	}, nil)
}

func (p *Producer) Close() {
	p.producer.Flush(flushTimeoutMs)
	p.producer.Close()
}
