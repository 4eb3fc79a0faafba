package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type BlockRepository interface {
	Create(ctx context.Context, block *domain.Block) error
	Delete(ctx context.Context, blockerID, blockedID int) error
	Exists(ctx context.Context, blockerID, blockedID int) (bool, error)
}
