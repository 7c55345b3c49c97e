package config

import (
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter returns a writer for the given catalog topic, or nil when no
// brokers are configured. Event publishing is optional for this service.
func NewKafkaWriter(topic string) *kafka.Writer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		AllowAutoTopicCreation: true,
	}
}
