package profile

import (
	"context"
	"fmt"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/gemini"
	"github.com/craftlink/craftlink-backend/internal/repository"
)

type UseCase struct {
	profileRepo  repository.ProfileRepository
	blockRepo    repository.BlockRepository
	geminiClient *gemini.GeminiClient
}

func NewUseCase(
	profileRepo repository.ProfileRepository,
	blockRepo repository.BlockRepository,
	geminiClient *gemini.GeminiClient,
) *UseCase {
	return &UseCase{
		profileRepo:  profileRepo,
		blockRepo:    blockRepo,
		geminiClient: geminiClient,
	}
}

// CreateProfileRequest represents the onboarding payload
type CreateProfileRequest struct {
	DisplayName string   `json:"display_name" binding:"required,min=2,max=100"`
	Handle      string   `json:"handle" binding:"required,handle"`
	Roles       []string `json:"roles" binding:"required,min=1,taglist"`
	Skills      []string `json:"skills" binding:"omitempty,taglist"`
	LookingFor  []string `json:"looking_for" binding:"omitempty,taglist"`
	VibeWords   []string `json:"vibe_words" binding:"omitempty,taglist"`
	Tagline     *string  `json:"tagline" binding:"omitempty,max=200"`
	Location    *string  `json:"location" binding:"omitempty,max=100"`
	Remote      bool     `json:"remote"`
	AvatarURL   *string  `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	DisplayName *string   `json:"display_name" binding:"omitempty,min=2,max=100"`
	Roles       *[]string `json:"roles" binding:"omitempty,min=1,taglist"`
	Skills      *[]string `json:"skills" binding:"omitempty,taglist"`
	LookingFor  *[]string `json:"looking_for" binding:"omitempty,taglist"`
	VibeWords   *[]string `json:"vibe_words" binding:"omitempty,taglist"`
	Tagline     *string   `json:"tagline" binding:"omitempty,max=200"`
	Location    *string   `json:"location" binding:"omitempty,max=100"`
	Remote      *bool     `json:"remote"`
	AvatarURL   *string   `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// GetMyProfile returns the current creator's profile
func (uc *UseCase) GetMyProfile(ctx context.Context, creatorID int) (*domain.Profile, error) {
	return uc.profileRepo.GetByCreatorID(ctx, creatorID)
}

// GetByHandle returns a profile by its public handle
func (uc *UseCase) GetByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	return uc.profileRepo.GetByHandle(ctx, handle)
}

// CompleteOnboarding creates the profile and marks the creator discoverable.
// Creators without a completed profile never enter anyone's candidate pool.
func (uc *UseCase) CompleteOnboarding(ctx context.Context, creatorID int, req *CreateProfileRequest) (*domain.Profile, error) {
	profile := &domain.Profile{
		CreatorID:   creatorID,
		DisplayName: req.DisplayName,
		Handle:      req.Handle,
		Roles:       req.Roles,
		Skills:      req.Skills,
		LookingFor:  req.LookingFor,
		VibeWords:   req.VibeWords,
		Tagline:     req.Tagline,
		Location:    req.Location,
		Remote:      req.Remote,
		AvatarURL:   req.AvatarURL,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.UpdateOnboardingStatus(ctx, creatorID, true); err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	profile.IsOnboardingComplete = true

	return profile, nil
}

// UpdateProfile applies a partial update to the current creator's profile
func (uc *UseCase) UpdateProfile(ctx context.Context, creatorID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Roles != nil {
		profile.Roles = *req.Roles
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.LookingFor != nil {
		profile.LookingFor = *req.LookingFor
	}
	if req.VibeWords != nil {
		profile.VibeWords = *req.VibeWords
	}
	if req.Tagline != nil {
		profile.Tagline = req.Tagline
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Remote != nil {
		profile.Remote = *req.Remote
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GenerateTaglineRequest represents a tagline generation request
type GenerateTaglineRequest struct {
	DisplayName string   `json:"display_name" binding:"required"`
	Roles       []string `json:"roles" binding:"required,min=1"`
	VibeWords   []string `json:"vibe_words" binding:"omitempty"`
}

// GenerateTagline produces an AI tagline suggestion for onboarding
func (uc *UseCase) GenerateTagline(ctx context.Context, req *GenerateTaglineRequest) (string, error) {
	if uc.geminiClient == nil {
		return "", fmt.Errorf("gemini client is not initialized")
	}
	return uc.geminiClient.GenerateTagline(ctx, req.DisplayName, req.Roles, req.VibeWords)
}

// BlockCreator blocks another creator. Blocking is one-directional in storage
// but removes both parties from each other's candidate pools.
func (uc *UseCase) BlockCreator(ctx context.Context, blockerID, blockedID int) error {
	if blockerID == blockedID {
		return domain.ErrInvalidInput
	}
	return uc.blockRepo.Create(ctx, &domain.Block{
		BlockerID: blockerID,
		BlockedID: blockedID,
	})
}

// UnblockCreator removes a block
func (uc *UseCase) UnblockCreator(ctx context.Context, blockerID, blockedID int) error {
	return uc.blockRepo.Delete(ctx, blockerID, blockedID)
}
