package contracts

import (
	"ccsed-client/internal/app/models"
	"context"
)

type DirectoryUsecase interface {
	ListEntries(ctx context.Context, kind models.DirectoryKind) ([]models.DirectoryEntry, error)
}
