package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

// stubRecorder records calls and returns configured errors.
type stubRecorder struct {
	likeErr error
	passErr error
	likes   [][2]int
	passes  [][2]int
}

func (r *stubRecorder) RecordLike(_ context.Context, viewerID, subjectID int) error {
	r.likes = append(r.likes, [2]int{viewerID, subjectID})
	return r.likeErr
}

func (r *stubRecorder) RecordPass(_ context.Context, viewerID, subjectID int) error {
	r.passes = append(r.passes, [2]int{viewerID, subjectID})
	return r.passErr
}

func sessionPool() []domain.Candidate {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Candidate{
		{CreatorID: 10, DisplayName: "Ava", Roles: []string{"Filmmaker"}, CreatedAt: base.Add(3 * time.Hour)},
		{CreatorID: 20, DisplayName: "Ben", Roles: []string{"Musician"}, CreatedAt: base.Add(2 * time.Hour)},
		{CreatorID: 30, DisplayName: "Chloe", Roles: []string{"Musician"}, CreatedAt: base.Add(time.Hour)},
	}
}

func TestSessionLikeRemovesCandidate(t *testing.T) {
	rec := &stubRecorder{}
	s := NewSession(1, sessionPool(), rec, 100)

	if err := s.Like(context.Background(), 20); err != nil {
		t.Fatalf("like: %v", err)
	}

	for _, c := range s.Pool() {
		if c.CreatorID == 20 {
			t.Error("liked candidate still in filtered pool")
		}
	}
	if len(rec.likes) != 1 || rec.likes[0] != [2]int{1, 20} {
		t.Errorf("recorded likes: %v", rec.likes)
	}

	// The raw pool is mutated too: clearing the filter must not resurrect
	// the candidate.
	for _, c := range s.SetFilter(FilterSpec{}) {
		if c.CreatorID == 20 {
			t.Error("liked candidate resurrected by filter reset")
		}
	}
}

func TestSessionLikeFailureKeepsCandidate(t *testing.T) {
	rec := &stubRecorder{likeErr: errors.New("db down")}
	s := NewSession(1, sessionPool(), rec, 100)

	if err := s.Like(context.Background(), 20); err == nil {
		t.Fatal("expected error from failed like")
	}

	found := false
	for _, c := range s.Pool() {
		if c.CreatorID == 20 {
			found = true
		}
	}
	if !found {
		t.Error("candidate removed although the like was not persisted")
	}
}

func TestSessionPassRemovesCandidateDespiteError(t *testing.T) {
	rec := &stubRecorder{passErr: errors.New("db down")}
	s := NewSession(1, sessionPool(), rec, 100)

	if err := s.Pass(context.Background(), 30); err != nil {
		t.Fatalf("pass must not surface recorder errors, got %v", err)
	}

	for _, c := range s.Pool() {
		if c.CreatorID == 30 {
			t.Error("passed candidate still visible")
		}
	}
}

func TestSessionRejectsSelfSwipe(t *testing.T) {
	s := NewSession(1, sessionPool(), &stubRecorder{}, 100)

	if err := s.Like(context.Background(), 1); !errors.Is(err, domain.ErrCannotSwipeSelf) {
		t.Errorf("like self: got %v", err)
	}
	if err := s.Pass(context.Background(), 1); !errors.Is(err, domain.ErrCannotSwipeSelf) {
		t.Errorf("pass self: got %v", err)
	}
}

// reentrantRecorder calls back into the session from inside RecordLike, the
// way a second request would while the first like is still in flight.
type reentrantRecorder struct {
	session *Session
	inner   error
	calls   int
}

func (r *reentrantRecorder) RecordLike(ctx context.Context, viewerID, subjectID int) error {
	r.calls++
	if r.calls == 1 {
		r.inner = r.session.Like(ctx, subjectID)
	}
	return nil
}

func (r *reentrantRecorder) RecordPass(context.Context, int, int) error { return nil }

func TestSessionLikeIsNotReentrant(t *testing.T) {
	rec := &reentrantRecorder{}
	s := NewSession(1, sessionPool(), rec, 100)
	rec.session = s

	if err := s.Like(context.Background(), 20); err != nil {
		t.Fatalf("like: %v", err)
	}

	if rec.calls != 1 {
		t.Errorf("recorder called %d times, want 1", rec.calls)
	}
	if rec.inner != nil {
		t.Errorf("re-entrant like should be silently ignored, got %v", rec.inner)
	}
}

func TestSessionSetFilterReappliesFromRawPool(t *testing.T) {
	s := NewSession(1, sessionPool(), &stubRecorder{}, 100)

	filtered := s.SetFilter(FilterSpec{Roles: []string{"Musician"}})
	if len(filtered) != 2 {
		t.Fatalf("filtered pool: got %d, want 2", len(filtered))
	}

	// Widening the filter again restores candidates hidden by the previous
	// spec, because filtering always rederives from the raw snapshot.
	all := s.SetFilter(FilterSpec{})
	if len(all) != 3 {
		t.Errorf("after reset: got %d, want 3", len(all))
	}
}

func TestSessionGestureLikesTopCandidate(t *testing.T) {
	rec := &stubRecorder{}
	s := NewSession(1, sessionPool(), rec, 100)

	s.PointerDown(0)
	s.PointerMove(150)
	decision, err := s.PointerUp(context.Background())
	if err != nil {
		t.Fatalf("pointer up: %v", err)
	}
	if decision != DecisionLike {
		t.Fatalf("got %q, want like", decision)
	}

	// Newest-first puts creator 10 on top.
	if len(rec.likes) != 1 || rec.likes[0][1] != 10 {
		t.Errorf("recorded likes: %v", rec.likes)
	}
	if top := s.CurrentCandidate(); top == nil || top.CreatorID != 20 {
		t.Errorf("next candidate should be 20, got %+v", top)
	}
}

func TestSessionGestureSnapBackKeepsCandidate(t *testing.T) {
	rec := &stubRecorder{}
	s := NewSession(1, sessionPool(), rec, 100)

	s.PointerDown(0)
	s.PointerMove(99)
	decision, err := s.PointerUp(context.Background())
	if err != nil {
		t.Fatalf("pointer up: %v", err)
	}
	if decision != DecisionNone {
		t.Errorf("got %q, want none", decision)
	}
	if len(rec.likes)+len(rec.passes) != 0 {
		t.Error("snap back must not record anything")
	}
	if top := s.CurrentCandidate(); top == nil || top.CreatorID != 10 {
		t.Errorf("top candidate changed: %+v", top)
	}
}

func TestSessionKeyboardOnEmptyPool(t *testing.T) {
	rec := &stubRecorder{}
	s := NewSession(1, nil, rec, 100)

	decision, err := s.Keyboard(context.Background(), "ArrowRight")
	if err != nil {
		t.Fatalf("keyboard: %v", err)
	}
	if decision != DecisionNone {
		t.Errorf("got %q, want none", decision)
	}
	if len(rec.likes) != 0 {
		t.Error("nothing should be recorded on an empty pool")
	}
}

func TestSessionKeyboardPass(t *testing.T) {
	rec := &stubRecorder{}
	s := NewSession(1, sessionPool(), rec, 100)

	decision, err := s.Keyboard(context.Background(), "ArrowLeft")
	if err != nil {
		t.Fatalf("keyboard: %v", err)
	}
	if decision != DecisionPass {
		t.Fatalf("got %q, want pass", decision)
	}
	if len(rec.passes) != 1 || rec.passes[0][1] != 10 {
		t.Errorf("recorded passes: %v", rec.passes)
	}
}

func TestSessionReplacePoolKeepsFilter(t *testing.T) {
	s := NewSession(1, sessionPool(), &stubRecorder{}, 100)
	s.SetFilter(FilterSpec{Roles: []string{"Musician"}})

	s.ReplacePool(sessionPool())

	for _, c := range s.Pool() {
		if c.CreatorID == 10 {
			t.Error("filter was dropped on pool replacement")
		}
	}
	if got := s.Spec(); len(got.Roles) != 1 {
		t.Errorf("spec lost: %+v", got)
	}
}
