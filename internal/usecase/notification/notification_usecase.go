package notification

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
)

type UseCase struct {
	notifRepo repository.NotificationRepository
}

func NewUseCase(notifRepo repository.NotificationRepository) *UseCase {
	return &UseCase{notifRepo: notifRepo}
}

// List returns the creator's notifications, newest first
func (uc *UseCase) List(ctx context.Context, creatorID, limit, offset int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.notifRepo.GetForCreator(ctx, creatorID, limit, offset)
}

// MarkRead marks one notification as read, scoped to its owner
func (uc *UseCase) MarkRead(ctx context.Context, creatorID, notificationID int) error {
	return uc.notifRepo.MarkRead(ctx, notificationID, creatorID)
}
