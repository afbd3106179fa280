package kafka

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestNew(t *testing.T) {
	// Creating the client does not dial the brokers, so an unreachable seed
	// list still yields a usable client struct.
	client, err := New(
		WithBrokers("unreachable:9092"),
		WithClientID("test-client"),
		kgo.WithLogger(kgo.BasicLogger(io.Discard, kgo.LogLevelError, nil)),
	)
	require.NoError(t, err, "New() with valid options should succeed")
	require.NotNil(t, client)
	assert.NotNil(t, client.GetClient(), "Underlying client should not be nil")

	assert.NoError(t, client.Close())
}

func TestClient_CloseTwice(t *testing.T) {
	client, err := New(WithBrokers("unreachable:9092"))
	require.NoError(t, err)

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close(), "Closing an already-closed client should be safe")
}
