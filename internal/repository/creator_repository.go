package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type CreatorRepository interface {
	Create(ctx context.Context, creator *domain.Creator) error
	GetByID(ctx context.Context, id int) (*domain.Creator, error)
	GetByEmail(ctx context.Context, email string) (*domain.Creator, error)
	Update(ctx context.Context, creator *domain.Creator) error
}
