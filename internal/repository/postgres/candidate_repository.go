package postgres

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *sqlx.DB
}

func NewCandidateRepository(db *sqlx.DB) repository.CandidateRepository {
	return &candidateRepository{db: db}
}

// LoadPool returns the discoverable candidate set for viewerID. Exclusions
// are applied server-side: the viewer themself, anyone already swiped by the
// viewer, anyone blocked in either direction, flagged accounts, and profiles
// that never finished onboarding. No viewer filter preferences are applied
// here; the in-memory filter engine owns those.
func (r *candidateRepository) LoadPool(ctx context.Context, viewerID, limit int) ([]domain.Candidate, error) {
	query := `
		SELECT p.creator_id, p.display_name, p.handle, p.roles, p.skills,
		       p.looking_for, p.tagline, p.vibe_words, p.location, p.remote,
		       p.avatar_url, c.is_verified, c.created_at
		FROM profiles p
		JOIN creators c ON c.id = p.creator_id
		WHERE c.is_flagged = false
		  AND p.is_onboarding_complete = true
		  AND p.creator_id <> $1
		  AND p.creator_id NOT IN (SELECT swiped_id FROM swipes WHERE swiper_id = $1)
		  AND p.creator_id NOT IN (SELECT blocked_id FROM blocks WHERE blocker_id = $1)
		  AND p.creator_id NOT IN (SELECT blocker_id FROM blocks WHERE blocked_id = $1)
		ORDER BY c.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, viewerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pool []domain.Candidate
	for rows.Next() {
		var cand domain.Candidate
		err := rows.Scan(
			&cand.CreatorID, &cand.DisplayName, &cand.Handle,
			pq.Array(&cand.Roles), pq.Array(&cand.Skills), pq.Array(&cand.LookingFor),
			&cand.Tagline, pq.Array(&cand.VibeWords), &cand.Location, &cand.Remote,
			&cand.AvatarURL, &cand.Verified, &cand.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		pool = append(pool, cand)
	}
	return pool, rows.Err()
}
