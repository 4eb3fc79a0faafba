package postgres

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (creator_id, kind, body, is_read)
		VALUES ($1, $2, $3, false)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, n.CreatorID, n.Kind, n.Body).
		Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepository) GetForCreator(ctx context.Context, creatorID, limit, offset int) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	query := `
		SELECT * FROM notifications
		WHERE creator_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &notifications, query, creatorID, limit, offset)
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, creatorID int) error {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND creator_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, creatorID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
