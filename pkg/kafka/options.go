package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// WithBrokers sets the Kafka brokers
func WithBrokers(brokers ...string) kgo.Opt {
	return kgo.SeedBrokers(brokers...)
}

// WithClientID sets the client ID for the Kafka client
func WithClientID(clientID string) kgo.Opt {
	return kgo.ClientID(clientID)
}

// WithAllowAutoTopicCreation enables automatic topic creation
func WithAllowAutoTopicCreation() kgo.Opt {
	return kgo.AllowAutoTopicCreation()
}

// WithDialTimeout sets the dial timeout
func WithDialTimeout(timeout time.Duration) kgo.Opt {
	return kgo.DialTimeout(timeout)
}

// WithRequestRetries sets the number of request retries
func WithRequestRetries(n int) kgo.Opt {
	return kgo.RequestRetries(n)
}
