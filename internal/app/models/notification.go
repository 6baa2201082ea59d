package models

import (
	"ccsed-client/internal/pkg/constvars"
	"time"
)

type EventKind string

const (
	EventAttentionResolved  EventKind = constvars.EventAttentionResolved
	EventAttentionRequested EventKind = constvars.EventAttentionRequested
)

// NotificationEvent is delivered once to the active listener and never stored.
type NotificationEvent struct {
	Kind       EventKind
	Payload    []byte
	ReceivedAt time.Time
}
