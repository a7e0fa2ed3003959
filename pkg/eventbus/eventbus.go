package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher sends JSON events to a subject.
type Publisher interface {
	PublishJSON(ctx context.Context, subject string, v any) error
	Close()
}

type Config struct {
	URL  string
	Name string
	// ConnectTimeout bounds the initial dial.
	ConnectTimeout time.Duration
}

// NATSPublisher publishes core NATS messages.
type NATSPublisher struct {
	nc     *nats.Conn
	mu     sync.Mutex
	closed bool
}

// Connect dials NATS. Reconnects are handled by the client library.
func Connect(cfg Config) (*NATSPublisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("eventbus: nats url is required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}

	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.Timeout(cfg.ConnectTimeout),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("eventbus: connect to NATS: %w", err)
	}
	return &NATSPublisher{nc: nc}, nil
}

// PublishJSON marshals v and publishes it. NATS publish does not take a
// context, so cancellation is only checked up front.
func (p *NATSPublisher) PublishJSON(ctx context.Context, subject string, v any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("eventbus: context cancelled before publish: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("eventbus: marshal message: %w", err)
	}
	return p.nc.Publish(subject, data)
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}

// Nop drops every event.
type Nop struct{}

func (Nop) PublishJSON(ctx context.Context, subject string, v any) error {
	return ctx.Err()
}

func (Nop) Close() {}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

// Event is one message captured by Recorder.
type Event struct {
	Subject string
	Payload json.RawMessage
}

func (r *Recorder) PublishJSON(ctx context.Context, subject string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Subject: subject, Payload: data})
	return nil
}

func (r *Recorder) Close() {}

// Published returns a copy of the captured events.
func (r *Recorder) Published() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.Events))
	copy(out, r.Events)
	return out
}
