// Package kafka provides a producer wrapper over franz-go.
package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaClient defines the interface for Kafka produce operations
type KafkaClient interface {
	Produce(ctx context.Context, topic string, value []byte) error
	Close() error
	GetClient() *kgo.Client
}

// Client represents a Kafka client wrapper
type Client struct {
	opts   []kgo.Opt
	client *kgo.Client
}

// New creates a new Kafka client with the provided options
func New(opts ...kgo.Opt) (KafkaClient, error) {
	kafkaClient, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		opts:   opts,
		client: kafkaClient,
	}, nil
}

// Produce sends a message to a Kafka topic and waits for the broker ack
func (k *Client) Produce(ctx context.Context, topic string, value []byte) error {
	record := &kgo.Record{
		Topic: topic,
		Value: value,
	}

	return k.client.ProduceSync(ctx, record).FirstErr()
}

// Close closes the Kafka client
func (k *Client) Close() error {
	if k.client != nil {
		k.client.Close()
	}
	return nil
}

// GetClient returns the underlying Kafka client for advanced operations
func (k *Client) GetClient() *kgo.Client {
	return k.client
}
