package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (swiper_id, swiped_id, is_like)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, swipe.SwiperID, swipe.SwipedID, swipe.IsLike).
		Scan(&swipe.ID, &swipe.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrSwipeAlreadyExists
	}
	return err
}

func (r *swipeRepository) GetByUsers(ctx context.Context, swiperID, swipedID int) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `SELECT * FROM swipes WHERE swiper_id = $1 AND swiped_id = $2`
	err := r.db.GetContext(ctx, &swipe, query, swiperID, swipedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) HasMutualLike(ctx context.Context, swiperID, swipedID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE swiper_id = $2 AND swiped_id = $1 AND is_like = true
		)
	`
	err := r.db.GetContext(ctx, &exists, query, swiperID, swipedID)
	return exists, err
}

func (r *swipeRepository) GetLikesReceived(ctx context.Context, swipedID, limit, offset int) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT * FROM swipes
		WHERE swiped_id = $1 AND is_like = true
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &swipes, query, swipedID, limit, offset)
	return swipes, err
}

func (r *swipeRepository) Delete(ctx context.Context, swiperID, swipedID int) error {
	query := `DELETE FROM swipes WHERE swiper_id = $1 AND swiped_id = $2`
	result, err := r.db.ExecContext(ctx, query, swiperID, swipedID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSwipeNotFound
	}
	return nil
}

func (r *swipeRepository) DeletePasses(ctx context.Context, swiperID int) (int, error) {
	query := `DELETE FROM swipes WHERE swiper_id = $1 AND is_like = false`
	result, err := r.db.ExecContext(ctx, query, swiperID)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	return int(rows), err
}
