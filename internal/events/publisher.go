// AngelaMos | 2026
// publisher.go

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dheerghayush/storefront-api/internal/core"
)

const envelopeVersion = 1

var (
	ErrBufferFull = errors.New("event buffer full")
	ErrClosed     = errors.New("publisher closed")
)

// Event is a domain event before it is wrapped in an Envelope. Key selects
// the partition so every event for one order stays ordered.
type Event struct {
	Type    string
	Key     string
	Payload any
}

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close(ctx context.Context) error
}

func NewEnvelope(ctx context.Context, producer string, evt Event) (*Envelope, error) {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", evt.Type, err)
	}

	return &Envelope{
		EventID:       uuid.New().String(),
		EventType:     evt.Type,
		EventVersion:  envelopeVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       core.TraceIDFromContext(ctx),
		CorrelationID: evt.Key,
		Payload:       payload,
	}, nil
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

func (Noop) Close(context.Context) error { return nil }
