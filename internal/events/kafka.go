// AngelaMos | 2026
// kafka.go

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dheerghayush/storefront-api/internal/config"
)

const writeTimeout = 10 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher hands messages to a single writer goroutine through a
// bounded inbox. Publish never blocks the request path.
type KafkaPublisher struct {
	w        messageWriter
	producer string
	inbox    chan kafka.Message
	done     chan struct{}
	mu       sync.RWMutex
	closed   bool
	logger   *slog.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
	return newKafkaPublisher(w, cfg.Producer, cfg.Buffer, logger)
}

func newKafkaPublisher(
	w messageWriter,
	producer string,
	buffer int,
	logger *slog.Logger,
) *KafkaPublisher {
	if buffer <= 0 {
		buffer = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &KafkaPublisher{
		w:        w,
		producer: producer,
		inbox:    make(chan kafka.Message, buffer),
		done:     make(chan struct{}),
		logger:   logger,
	}
	go p.run()
	return p
}

func (p *KafkaPublisher) run() {
	defer close(p.done)

	for msg := range p.inbox {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := p.w.WriteMessages(ctx, msg); err != nil {
			p.logger.Error("kafka write failed",
				"key", string(msg.Key),
				"error", err,
			)
		}
		cancel()
	}

	if err := p.w.Close(); err != nil {
		p.logger.Error("kafka writer close failed", "error", err)
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt Event) error {
	env, err := NewEnvelope(ctx, p.producer, evt)
	if err != nil {
		return err
	}

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.Key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("publish %s: %w", evt.Type, ErrClosed)
	}

	select {
	case p.inbox <- msg:
		return nil
	default:
		return fmt.Errorf("publish %s: %w", evt.Type, ErrBufferFull)
	}
}

// Close stops accepting events and waits for the buffered ones to flush
// or for ctx to expire.
func (p *KafkaPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.inbox)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("flush kafka publisher: %w", ctx.Err())
	}
}
