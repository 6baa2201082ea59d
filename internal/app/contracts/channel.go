package contracts

import (
	"ccsed-client/internal/app/models"
	"context"
)

// EventHandler runs on the channel's single dispatch goroutine and must not block.
type EventHandler func(event models.NotificationEvent)

type NotificationChannel interface {
	Connect(ctx context.Context) error
	Subscribe(kind models.EventKind, handler EventHandler)
	Unsubscribe(kind models.EventKind)
	Emit(ctx context.Context, kind models.EventKind, payload interface{}) error
	Close() error
}

// NotificationChannelFactory hands each controller its own channel instance.
type NotificationChannelFactory func() NotificationChannel
