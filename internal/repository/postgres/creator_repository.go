package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type creatorRepository struct {
	db *sqlx.DB
}

func NewCreatorRepository(db *sqlx.DB) repository.CreatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) Create(ctx context.Context, creator *domain.Creator) error {
	query := `
		INSERT INTO creators (email, password_hash, is_verified, is_flagged)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		creator.Email, creator.PasswordHash, creator.IsVerified, creator.IsFlagged,
	).Scan(&creator.ID, &creator.CreatedAt, &creator.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *creatorRepository) GetByID(ctx context.Context, id int) (*domain.Creator, error) {
	var creator domain.Creator
	query := `SELECT * FROM creators WHERE id = $1`
	err := r.db.GetContext(ctx, &creator, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) GetByEmail(ctx context.Context, email string) (*domain.Creator, error) {
	var creator domain.Creator
	query := `SELECT * FROM creators WHERE email = $1`
	err := r.db.GetContext(ctx, &creator, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) Update(ctx context.Context, creator *domain.Creator) error {
	query := `
		UPDATE creators
		SET email = $1, password_hash = $2, is_verified = $3, is_flagged = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		creator.Email, creator.PasswordHash, creator.IsVerified, creator.IsFlagged, creator.ID,
	).Scan(&creator.UpdatedAt)
}
