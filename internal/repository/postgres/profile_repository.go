package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, creator_id, display_name, handle, roles, skills, looking_for,
	tagline, vibe_words, location, remote, avatar_url,
	is_onboarding_complete, created_at, updated_at
`

func scanProfile(row *sql.Row) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.CreatorID, &profile.DisplayName, &profile.Handle,
		pq.Array(&profile.Roles), pq.Array(&profile.Skills), pq.Array(&profile.LookingFor),
		&profile.Tagline, pq.Array(&profile.VibeWords), &profile.Location,
		&profile.Remote, &profile.AvatarURL,
		&profile.IsOnboardingComplete, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			creator_id, display_name, handle, roles, skills, looking_for,
			tagline, vibe_words, location, remote, avatar_url, is_onboarding_complete
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.CreatorID, profile.DisplayName, profile.Handle,
		pq.Array(profile.Roles), pq.Array(profile.Skills), pq.Array(profile.LookingFor),
		profile.Tagline, pq.Array(profile.VibeWords), profile.Location,
		profile.Remote, profile.AvatarURL, profile.IsOnboardingComplete,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrHandleTaken
	}
	return err
}

func (r *profileRepository) GetByCreatorID(ctx context.Context, creatorID int) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE creator_id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, creatorID))
}

func (r *profileRepository) GetByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE handle = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, handle))
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, handle = $2, roles = $3, skills = $4, looking_for = $5,
		    tagline = $6, vibe_words = $7, location = $8, remote = $9, avatar_url = $10,
		    is_onboarding_complete = $11,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Handle,
		pq.Array(profile.Roles), pq.Array(profile.Skills), pq.Array(profile.LookingFor),
		profile.Tagline, pq.Array(profile.VibeWords), profile.Location,
		profile.Remote, profile.AvatarURL, profile.IsOnboardingComplete,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrHandleTaken
	}
	return err
}

func (r *profileRepository) UpdateOnboardingStatus(ctx context.Context, creatorID int, isComplete bool) error {
	query := `
		UPDATE profiles
		SET is_onboarding_complete = $1, updated_at = CURRENT_TIMESTAMP
		WHERE creator_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, isComplete, creatorID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
