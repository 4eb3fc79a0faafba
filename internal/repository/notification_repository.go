package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetForCreator(ctx context.Context, creatorID, limit, offset int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, creatorID int) error
}
