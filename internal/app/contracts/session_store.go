package contracts

import (
	"ccsed-client/internal/app/models"
	"context"
)

// SessionStore persists at most one credential. Load reports absence through
// found=false, never through an empty credential.
type SessionStore interface {
	Save(ctx context.Context, credential models.Credential) error
	Load(ctx context.Context) (credential models.Credential, found bool, err error)
	Clear(ctx context.Context) error
}
