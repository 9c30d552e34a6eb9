// AngelaMos | 2026
// kafka_test.go

package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	block    chan struct{}
	closed   bool
	err      error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msgs...)
	return f.err
}

func (f *fakeWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeWriter) snapshot() []kafka.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]kafka.Message(nil), f.messages...)
}

func TestKafkaPublisher_WrapsEventInEnvelope(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "storefront-api", 8, nil)

	err := p.Publish(context.Background(), Event{
		Type:    "OrderCreated",
		Key:     "order-1",
		Payload: map[string]any{"order_id": "order-1", "total": 220.0},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))

	msgs := w.snapshot()
	require.Len(t, msgs, 1)
	assert.Equal(t, "order-1", string(msgs[0].Key))
	assert.True(t, w.closed)

	var env Envelope
	require.NoError(t, json.Unmarshal(msgs[0].Value, &env))
	assert.Equal(t, "OrderCreated", env.EventType)
	assert.Equal(t, 1, env.EventVersion)
	assert.Equal(t, "storefront-api", env.Producer)
	assert.Equal(t, "order-1", env.CorrelationID)
	assert.NotEmpty(t, env.EventID)
	assert.JSONEq(t, `{"order_id":"order-1","total":220}`, string(env.Payload))
}

func TestKafkaPublisher_FullBufferDoesNotBlock(t *testing.T) {
	w := &fakeWriter{block: make(chan struct{})}
	p := newKafkaPublisher(w, "storefront-api", 1, nil)

	evt := Event{Type: "OrderCreated", Key: "k", Payload: struct{}{}}

	var sawFull bool
	for range 5 {
		if err := p.Publish(context.Background(), evt); errors.Is(err, ErrBufferFull) {
			sawFull = true
			break
		}
	}
	assert.True(t, sawFull)

	close(w.block)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))
}

func TestKafkaPublisher_PublishAfterClose(t *testing.T) {
	p := newKafkaPublisher(&fakeWriter{}, "storefront-api", 4, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))
	require.NoError(t, p.Close(ctx))

	err := p.Publish(context.Background(), Event{Type: "X", Key: "k", Payload: 1})
	assert.ErrorIs(t, err, ErrClosed)
}
