package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

// CandidateRepository backs the discovery pool loader. LoadPool applies the
// server-side exclusions (already swiped, blocked either way, self, flagged,
// not onboarded) and caps the result at limit.
type CandidateRepository interface {
	LoadPool(ctx context.Context, viewerID, limit int) ([]domain.Candidate, error)
}
