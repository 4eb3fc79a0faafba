package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/gemini"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/realtime"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"go.uber.org/zap"
)

// UseCase is the match detector: it decides whether a like produces a match
// and owns the match side effects (message channel, memberships,
// notifications, change-feed event, optional AI icebreakers).
type UseCase struct {
	matchRepo    repository.MatchRepository
	swipeRepo    repository.SwipeRepository
	convRepo     repository.ConversationRepository
	notifRepo    repository.NotificationRepository
	profileRepo  repository.ProfileRepository
	publisher    *realtime.Publisher
	geminiClient *gemini.GeminiClient
	logger       *zap.Logger
}

func NewUseCase(
	matchRepo repository.MatchRepository,
	swipeRepo repository.SwipeRepository,
	convRepo repository.ConversationRepository,
	notifRepo repository.NotificationRepository,
	profileRepo repository.ProfileRepository,
	publisher *realtime.Publisher,
	geminiClient *gemini.GeminiClient,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		matchRepo:    matchRepo,
		swipeRepo:    swipeRepo,
		convRepo:     convRepo,
		notifRepo:    notifRepo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		geminiClient: geminiClient,
		logger:       logger,
	}
}

// CheckAndCreateMatch is invoked after a successful like. It creates a match
// on the first like between the pair (mutuality is recorded, not required),
// idempotently: an existing match for the pair is returned untouched. Any
// side-effect failure aborts the remainder of this invocation and is not
// retried; the like that triggered it is never rolled back, and re-liking
// retries the whole sequence.
func (uc *UseCase) CheckAndCreateMatch(ctx context.Context, viewerID, subjectID int) (*domain.Match, error) {
	existing, err := uc.matchRepo.GetByUsers(ctx, viewerID, subjectID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to check existing match: %w", err)
	}

	mutual, err := uc.swipeRepo.HasMutualLike(ctx, viewerID, subjectID)
	if err != nil {
		uc.logger.Warn("mutual-like check failed, recording match as non-mutual",
			zap.Int("viewer_id", viewerID), zap.Int("subject_id", subjectID), zap.Error(err))
		mutual = false
	}

	conv := &domain.Conversation{}
	if err := uc.convRepo.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	if err := uc.convRepo.AddMember(ctx, conv.ID, viewerID); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	if err := uc.convRepo.AddMember(ctx, conv.ID, subjectID); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	match := &domain.Match{
		User1ID:        viewerID,
		User2ID:        subjectID,
		IsMutual:       mutual,
		IsActive:       true,
		ConversationID: &conv.ID,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		// Lost a race with the subject liking back; theirs wins.
		if raced, gerr := uc.matchRepo.GetByUsers(ctx, viewerID, subjectID); gerr == nil {
			return raced, nil
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	uc.notifyParticipants(ctx, match)

	uc.publisher.Publish(ctx, viewerID, realtime.EventMatchCreated, map[string]interface{}{"match_id": match.ID})
	uc.publisher.Publish(ctx, subjectID, realtime.EventMatchCreated, map[string]interface{}{"match_id": match.ID})

	if uc.geminiClient != nil {
		go uc.enrichWithIcebreakers(context.WithoutCancel(ctx), match)
	}

	return match, nil
}

func (uc *UseCase) notifyParticipants(ctx context.Context, match *domain.Match) {
	for _, userID := range []int{match.User1ID, match.User2ID} {
		otherID, _ := match.GetOtherUserID(userID)
		body := "You have a new collab match"
		if profile, err := uc.profileRepo.GetByCreatorID(ctx, otherID); err == nil {
			body = fmt.Sprintf("You matched with %s", profile.DisplayName)
		}
		n := &domain.Notification{
			CreatorID: userID,
			Kind:      domain.NotificationKindMatch,
			Body:      body,
		}
		if err := uc.notifRepo.Create(ctx, n); err != nil {
			uc.logger.Warn("failed to create match notification",
				zap.Int("creator_id", userID), zap.Error(err))
		}
	}
}

func (uc *UseCase) enrichWithIcebreakers(ctx context.Context, match *domain.Match) {
	p1, err := uc.profileRepo.GetByCreatorID(ctx, match.User1ID)
	if err != nil {
		return
	}
	p2, err := uc.profileRepo.GetByCreatorID(ctx, match.User2ID)
	if err != nil {
		return
	}

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, p1.Roles, p1.Skills, p2.Roles, p2.Skills)
	if err != nil {
		uc.logger.Debug("icebreaker generation failed", zap.Int("match_id", match.ID), zap.Error(err))
		return
	}

	if err := uc.matchRepo.UpdateIcebreakers(ctx, match.ID, icebreakers); err != nil {
		uc.logger.Warn("failed to store icebreakers", zap.Int("match_id", match.ID), zap.Error(err))
	}
}

// MatchResponse pairs a match with the other participant's profile.
type MatchResponse struct {
	Match        *domain.Match   `json:"match"`
	OtherProfile *domain.Profile `json:"other_profile,omitempty"`
}

// GetMatches returns the viewer's active matches, newest first.
func (uc *UseCase) GetMatches(ctx context.Context, viewerID int) ([]*MatchResponse, error) {
	matches, err := uc.matchRepo.GetActiveMatches(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	responses := make([]*MatchResponse, 0, len(matches))
	for _, m := range matches {
		resp := &MatchResponse{Match: m}
		if otherID, ok := m.GetOtherUserID(viewerID); ok {
			if profile, err := uc.profileRepo.GetByCreatorID(ctx, otherID); err == nil {
				resp.OtherProfile = profile
			}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Unmatch removes a match on behalf of either participant. The channel
// memberships go with it, so neither side retains conversation access.
func (uc *UseCase) Unmatch(ctx context.Context, viewerID, matchID int) error {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasUser(viewerID) {
		return domain.ErrMatchNotFound
	}

	if match.ConversationID != nil {
		for _, userID := range []int{match.User1ID, match.User2ID} {
			if err := uc.convRepo.RemoveMember(ctx, *match.ConversationID, userID); err != nil {
				uc.logger.Warn("failed to remove conversation member on unmatch",
					zap.Int("creator_id", userID), zap.Error(err))
			}
		}
	}

	return uc.matchRepo.Delete(ctx, matchID)
}
