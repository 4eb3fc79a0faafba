package swipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"go.uber.org/zap"
)

// MatchDetector decides whether a like should produce a match. Implemented
// by the match use case.
type MatchDetector interface {
	CheckAndCreateMatch(ctx context.Context, viewerID, subjectID int) (*domain.Match, error)
}

// UseCase is the interaction recorder: it persists like/pass outcomes with
// deliberately asymmetric failure rules. A like must be durably recorded
// before the discovery session hides the candidate; a pass hides the
// candidate no matter what happened to the write.
type UseCase struct {
	swipeRepo   repository.SwipeRepository
	profileRepo repository.ProfileRepository
	detector    MatchDetector
	logger      *zap.Logger
}

func NewUseCase(
	swipeRepo repository.SwipeRepository,
	profileRepo repository.ProfileRepository,
	detector MatchDetector,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		swipeRepo:   swipeRepo,
		profileRepo: profileRepo,
		detector:    detector,
		logger:      logger,
	}
}

// RecordLike persists a like and triggers match detection. A duplicate like
// is an idempotent success, and the detector still runs so a previously
// failed match creation can be retried by simply liking again. Detector
// failures never surface: the like itself is the durable fact.
func (uc *UseCase) RecordLike(ctx context.Context, viewerID, subjectID int) error {
	if viewerID == subjectID {
		return domain.ErrCannotSwipeSelf
	}

	swipe := &domain.Swipe{
		SwiperID: viewerID,
		SwipedID: subjectID,
		IsLike:   true,
	}

	if err := uc.swipeRepo.Create(ctx, swipe); err != nil {
		if !errors.Is(err, domain.ErrSwipeAlreadyExists) {
			return fmt.Errorf("failed to record like: %w", err)
		}
	}

	if _, err := uc.detector.CheckAndCreateMatch(ctx, viewerID, subjectID); err != nil {
		uc.logger.Warn("match detection failed after like",
			zap.Int("viewer_id", viewerID),
			zap.Int("subject_id", subjectID),
			zap.Error(err),
		)
	}

	return nil
}

// RecordPass persists a pass best-effort. Failures are logged and swallowed:
// declining to show a candidate again is a local concern first, and the
// viewer must never be trapped looking at someone they dismissed.
func (uc *UseCase) RecordPass(ctx context.Context, viewerID, subjectID int) error {
	if viewerID == subjectID {
		return domain.ErrCannotSwipeSelf
	}

	swipe := &domain.Swipe{
		SwiperID: viewerID,
		SwipedID: subjectID,
		IsLike:   false,
	}

	if err := uc.swipeRepo.Create(ctx, swipe); err != nil {
		if errors.Is(err, domain.ErrSwipeAlreadyExists) {
			return nil
		}
		uc.logger.Warn("failed to persist pass, candidate hidden locally only",
			zap.Int("viewer_id", viewerID),
			zap.Int("subject_id", subjectID),
			zap.Error(err),
		)
	}

	return nil
}

// LikeReceivedResponse pairs a received like with the liker's profile.
type LikeReceivedResponse struct {
	SwipeID   int             `json:"swipe_id"`
	Profile   *domain.Profile `json:"profile"`
	CreatedAt string          `json:"created_at"`
}

// GetLikesReceived returns who liked the viewer, newest first.
func (uc *UseCase) GetLikesReceived(ctx context.Context, viewerID, limit, offset int) ([]*LikeReceivedResponse, error) {
	likes, err := uc.swipeRepo.GetLikesReceived(ctx, viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes received: %w", err)
	}

	responses := make([]*LikeReceivedResponse, 0, len(likes))
	for _, like := range likes {
		profile, err := uc.profileRepo.GetByCreatorID(ctx, like.SwiperID)
		if err != nil {
			continue
		}
		responses = append(responses, &LikeReceivedResponse{
			SwipeID:   like.ID,
			Profile:   profile,
			CreatedAt: like.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return responses, nil
}

// DeleteSwipe lets the viewer purge one decision from their history.
func (uc *UseCase) DeleteSwipe(ctx context.Context, viewerID, subjectID int) error {
	return uc.swipeRepo.Delete(ctx, viewerID, subjectID)
}

// ResetPasses deletes all of the viewer's passes so dismissed candidates
// can reappear on the next pool reload.
func (uc *UseCase) ResetPasses(ctx context.Context, viewerID int) (int, error) {
	count, err := uc.swipeRepo.DeletePasses(ctx, viewerID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset passes: %w", err)
	}
	return count, nil
}
