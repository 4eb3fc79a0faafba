package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

// Recorder persists swipe outcomes. Implemented by the swipe use case; a
// returned error from RecordLike means the like was NOT persisted. RecordPass
// is best-effort and never reports persistence failures.
type Recorder interface {
	RecordLike(ctx context.Context, viewerID, subjectID int) error
	RecordPass(ctx context.Context, viewerID, subjectID int) error
}

// Session owns one viewer's discovery state: the raw pool snapshot, the
// filtered view over it, the active FilterSpec and the gesture machine.
// All mutation goes through its methods; callers never touch the slices.
type Session struct {
	mu       sync.Mutex
	viewerID int
	recorder Recorder

	rawPool  []domain.Candidate
	filtered []domain.Candidate
	spec     FilterSpec

	liking  bool
	gesture *Gesture

	lastActive time.Time
}

func NewSession(viewerID int, pool []domain.Candidate, recorder Recorder, swipeThreshold float64) *Session {
	s := &Session{
		viewerID:   viewerID,
		recorder:   recorder,
		rawPool:    pool,
		gesture:    NewGesture(swipeThreshold),
		lastActive: time.Now(),
	}
	s.filtered = Apply(s.rawPool, s.spec)
	return s
}

func (s *Session) ViewerID() int { return s.viewerID }

// Pool returns a copy of the filtered pool.
func (s *Session) Pool() []domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	out := make([]domain.Candidate, len(s.filtered))
	copy(out, s.filtered)
	return out
}

func (s *Session) Spec() FilterSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

// CurrentCandidate is the top of the filtered pool, nil when exhausted.
func (s *Session) CurrentCandidate() *domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.filtered) == 0 {
		return nil
	}
	c := s.filtered[0]
	return &c
}

// SetFilter replaces the spec and re-derives the filtered pool from the raw
// snapshot. It never refetches; a stale raw pool is reconciled only by Reload.
func (s *Session) SetFilter(spec FilterSpec) []domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.spec = spec
	s.filtered = Apply(s.rawPool, s.spec)
	out := make([]domain.Candidate, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// ReplacePool swaps in a freshly loaded raw pool (filter change reload or
// session restart) and reapplies the current spec.
func (s *Session) ReplacePool(pool []domain.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.rawPool = pool
	s.filtered = Apply(s.rawPool, s.spec)
}

// Like records a like and, on persistence success, removes the subject from
// both pools optimistically. A persistence failure leaves the pools
// untouched so the candidate is never silently lost. Re-entrant calls while
// a like is in flight are silently ignored.
func (s *Session) Like(ctx context.Context, subjectID int) error {
	if subjectID == s.viewerID {
		return domain.ErrCannotSwipeSelf
	}

	s.mu.Lock()
	if s.liking {
		s.mu.Unlock()
		return nil
	}
	s.liking = true
	s.lastActive = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.liking = false
		s.mu.Unlock()
	}()

	if err := s.recorder.RecordLike(ctx, s.viewerID, subjectID); err != nil {
		return err
	}

	s.removeCandidate(subjectID)
	return nil
}

// Pass records a pass best-effort and removes the subject from both pools
// unconditionally: a dismissed candidate must never reappear because a
// write failed.
func (s *Session) Pass(ctx context.Context, subjectID int) error {
	if subjectID == s.viewerID {
		return domain.ErrCannotSwipeSelf
	}

	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()

	_ = s.recorder.RecordPass(ctx, s.viewerID, subjectID)

	s.removeCandidate(subjectID)
	return nil
}

// PointerDown, PointerMove and PointerUp drive the gesture machine against
// the current candidate. A decision emitted by PointerUp is applied
// immediately and the machine settles back to idle.
func (s *Session) PointerDown(x float64) {
	s.mu.Lock()
	s.gesture.PointerDown(x)
	s.mu.Unlock()
}

func (s *Session) PointerMove(x float64) {
	s.mu.Lock()
	s.gesture.PointerMove(x)
	s.mu.Unlock()
}

func (s *Session) PointerUp(ctx context.Context) (Decision, error) {
	s.mu.Lock()
	decision := s.gesture.PointerUp()
	s.mu.Unlock()
	return s.applyDecision(ctx, decision)
}

// Keyboard applies an arrow-key decision, skipping the drag states. Ignored
// when no candidate remains.
func (s *Session) Keyboard(ctx context.Context, key string) (Decision, error) {
	if s.CurrentCandidate() == nil {
		return DecisionNone, nil
	}
	s.mu.Lock()
	decision := s.gesture.Keyboard(key)
	s.mu.Unlock()
	return s.applyDecision(ctx, decision)
}

func (s *Session) applyDecision(ctx context.Context, decision Decision) (Decision, error) {
	if decision == DecisionNone {
		return DecisionNone, nil
	}

	current := s.CurrentCandidate()
	if current == nil {
		s.mu.Lock()
		s.gesture.Reset()
		s.mu.Unlock()
		return DecisionNone, nil
	}

	var err error
	switch decision {
	case DecisionLike:
		err = s.Like(ctx, current.CreatorID)
	case DecisionPass:
		err = s.Pass(ctx, current.CreatorID)
	}

	s.mu.Lock()
	s.gesture.Settle()
	s.gesture.Reset()
	s.mu.Unlock()

	if err != nil {
		return decision, err
	}
	return decision, nil
}

func (s *Session) removeCandidate(subjectID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawPool = removeByID(s.rawPool, subjectID)
	s.filtered = removeByID(s.filtered, subjectID)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func removeByID(pool []domain.Candidate, creatorID int) []domain.Candidate {
	out := pool[:0]
	for _, c := range pool {
		if c.CreatorID != creatorID {
			out = append(out, c)
		}
	}
	return out
}
