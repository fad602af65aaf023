package services

import (
	"context"
	"encoding/json"
)

// Change actions carried by ChangeEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventPublisher delivers change events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// ChangeEvent is published after every successful mutation.
type ChangeEvent struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	ID       string `json:"id"`
	Data     any    `json:"data,omitempty"`
}

// RoutingKey returns "<resource>.<action>".
func (e ChangeEvent) RoutingKey() string {
	return e.Resource + "." + e.Action
}

// publishEvent is best effort: failures are logged and never returned.
func (s *CRUDService[T, P, Req, Resp]) publishEvent(ctx context.Context, event ChangeEvent) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Str("id", event.ID).Msg("failed to marshal change event")
		return
	}
	if err := s.publisher.Publish(ctx, event.RoutingKey(), body); err != nil {
		s.log.Warn().Err(err).Str("id", event.ID).Str("routing_key", event.RoutingKey()).Msg("failed to publish change event")
		return
	}
	s.log.Debug().Str("id", event.ID).Str("routing_key", event.RoutingKey()).Msg("published change event")
}
