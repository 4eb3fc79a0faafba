package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, hashedToken string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, hashedToken string) error
	DeleteExpired(ctx context.Context) (int, error)
}
