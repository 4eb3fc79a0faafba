package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"go.uber.org/zap"
)

// UseCase loads candidate pools and manages per-viewer discovery sessions.
type UseCase struct {
	candidateRepo repository.CandidateRepository
	recorder      Recorder
	batchSize     int
	threshold     float64
	logger        *zap.Logger

	mu       sync.Mutex
	sessions map[int]*Session
}

func NewUseCase(
	candidateRepo repository.CandidateRepository,
	recorder Recorder,
	batchSize int,
	swipeThresholdPx int,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		candidateRepo: candidateRepo,
		recorder:      recorder,
		batchSize:     batchSize,
		threshold:     float64(swipeThresholdPx),
		logger:        logger,
		sessions:      make(map[int]*Session),
	}
}

// LoadPool fetches the raw candidate set for a viewer. On failure the pool
// is left empty and the error is surfaced for the caller to retry.
func (uc *UseCase) LoadPool(ctx context.Context, viewerID int) ([]domain.Candidate, error) {
	pool, err := uc.candidateRepo.LoadPool(ctx, viewerID, uc.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}
	return pool, nil
}

// GetSession returns the viewer's session, loading a fresh pool when none
// exists yet.
func (uc *UseCase) GetSession(ctx context.Context, viewerID int) (*Session, error) {
	uc.mu.Lock()
	if s, ok := uc.sessions[viewerID]; ok {
		uc.mu.Unlock()
		return s, nil
	}
	uc.mu.Unlock()

	pool, err := uc.LoadPool(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	// Lost the race to another request; keep the winner.
	if s, ok := uc.sessions[viewerID]; ok {
		return s, nil
	}
	s := NewSession(viewerID, pool, uc.recorder, uc.threshold)
	uc.sessions[viewerID] = s
	return s, nil
}

// Reload replaces the session's raw pool with fresh server state. This is
// the only reconciliation point for the optimistic local mutations.
func (uc *UseCase) Reload(ctx context.Context, viewerID int) (*Session, error) {
	s, err := uc.GetSession(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	pool, err := uc.LoadPool(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	s.ReplacePool(pool)
	return s, nil
}

// SetFilter updates the spec on the viewer's session and, because a filter
// change invalidates the snapshot's exclusion assumptions, reloads the raw
// pool before reapplying.
func (uc *UseCase) SetFilter(ctx context.Context, viewerID int, spec FilterSpec) ([]domain.Candidate, error) {
	s, err := uc.Reload(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return s.SetFilter(spec), nil
}

// EvictIdle drops sessions inactive for longer than maxIdle and returns the
// number evicted. Called by the maintenance scheduler.
func (uc *UseCase) EvictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	evicted := 0
	for id, s := range uc.sessions {
		if s.idleSince().Before(cutoff) {
			delete(uc.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		uc.logger.Info("evicted idle discovery sessions", zap.Int("count", evicted))
	}
	return evicted
}

// DropSession removes a viewer's session outright (logout, block changes).
func (uc *UseCase) DropSession(viewerID int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, viewerID)
}
