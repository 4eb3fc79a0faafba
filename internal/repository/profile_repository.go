package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByCreatorID(ctx context.Context, creatorID int) (*domain.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	UpdateOnboardingStatus(ctx context.Context, creatorID int, isComplete bool) error
}
