package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error)
	GetActiveMatches(ctx context.Context, userID int) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id int, isActive bool) error
	UpdateIcebreakers(ctx context.Context, id int, icebreakers []string) error
	Delete(ctx context.Context, id int) error
}
