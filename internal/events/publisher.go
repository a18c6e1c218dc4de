// Package events announces flight lifecycle changes to other systems.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/logging"

	"github.com/nats-io/nats.go"
)

// FlightEvent is the payload published for every flight write
type FlightEvent struct {
	Event      constants.FlightEvent `json:"event"`
	FlightID   string                `json:"flight_id"`
	Departure  string                `json:"departure,omitempty"`
	Arrival    string                `json:"arrival,omitempty"`
	OccurredAt time.Time             `json:"occurred_at"`
}

// Publisher delivers flight events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, evt FlightEvent) error
	Close()
}

// NoopPublisher drops every event; used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, FlightEvent) error { return nil }
func (NoopPublisher) Close()                                     {}

// conn is the subset of *nats.Conn the publisher needs
type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher publishes events as JSON on "<prefix>.<event>"
type NATSPublisher struct {
	nc     conn
	prefix string
}

// NewNATSPublisher connects to url. The connection reconnects on its own;
// events published while disconnected are buffered by the client.
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("flightdesk-scheduler"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logging.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logging.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return newNATSPublisher(nc, prefix), nil
}

func newNATSPublisher(nc conn, prefix string) *NATSPublisher {
	return &NATSPublisher{nc: nc, prefix: prefix}
}

// Subject returns the subject an event is published on
func (p *NATSPublisher) Subject(evt constants.FlightEvent) string {
	if p.prefix == "" {
		return string(evt)
	}
	return p.prefix + "." + string(evt)
}

func (p *NATSPublisher) Publish(ctx context.Context, evt FlightEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal flight event: %w", err)
	}
	if err := p.nc.Publish(p.Subject(evt.Event), data); err != nil {
		return fmt.Errorf("publish %s: %w", evt.Event, err)
	}
	return nil
}

// Close drains pending messages before disconnecting
func (p *NATSPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		logging.Warn("NATS drain failed", "error", err)
	}
}

// New picks the NATS publisher when url is set and the noop one otherwise.
func New(url, prefix string) (Publisher, error) {
	if url == "" {
		return NoopPublisher{}, nil
	}
	return NewNATSPublisher(url, prefix)
}
