package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type SwipeRepository interface {
	Create(ctx context.Context, swipe *domain.Swipe) error
	GetByUsers(ctx context.Context, swiperID, swipedID int) (*domain.Swipe, error)
	HasMutualLike(ctx context.Context, swiperID, swipedID int) (bool, error)
	GetLikesReceived(ctx context.Context, swipedID, limit, offset int) ([]*domain.Swipe, error)
	Delete(ctx context.Context, swiperID, swipedID int) error
	DeletePasses(ctx context.Context, swiperID int) (int, error)
}
