package contracts

import (
	"ccsed-client/internal/app/models"
	"context"
)

type SessionController interface {
	Activate(ctx context.Context) models.SessionState
	State() models.SessionState
	Session() models.Session
}
