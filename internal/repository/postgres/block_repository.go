package postgres

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type blockRepository struct {
	db *sqlx.DB
}

func NewBlockRepository(db *sqlx.DB) repository.BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(ctx context.Context, block *domain.Block) error {
	query := `
		INSERT INTO blocks (blocker_id, blocked_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, block.BlockerID, block.BlockedID).
		Scan(&block.ID, &block.CreatedAt)
	if isUniqueViolation(err) {
		// Blocking twice is a no-op
		return nil
	}
	return err
}

func (r *blockRepository) Delete(ctx context.Context, blockerID, blockedID int) error {
	query := `DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`
	result, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBlockNotFound
	}
	return nil
}

func (r *blockRepository) Exists(ctx context.Context, blockerID, blockedID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM blocks WHERE blocker_id = $1 AND blocked_id = $2
		)
	`
	err := r.db.GetContext(ctx, &exists, query, blockerID, blockedID)
	return exists, err
}
