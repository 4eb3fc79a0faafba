package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.UseCase
}

func NewProfileHandler(profileUseCase *profile.UseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile returns the current creator's profile
// @Summary Get my profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), creatorID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load profile",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// CompleteOnboarding creates the profile and makes the creator discoverable
// @Summary Complete onboarding
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.CreateProfileRequest true "Profile data"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/complete-onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	p, err := h.profileUseCase.CompleteOnboarding(c.Request.Context(), creatorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileAlreadyExists):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "profile already exists",
			})
		case errors.Is(err, domain.ErrHandleTaken):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "handle already taken",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to create profile",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, p)
}

// UpdateMyProfile applies a partial update to the current profile
// @Summary Update my profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	p, err := h.profileUseCase.UpdateProfile(c.Request.Context(), creatorID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetByHandle returns a public profile by handle
// @Summary Get profile by handle
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param handle path string true "Handle"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/handle/{handle} [get]
func (h *ProfileHandler) GetByHandle(c *gin.Context) {
	handle := c.Param("handle")

	p, err := h.profileUseCase.GetByHandle(c.Request.Context(), handle)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load profile",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// GenerateTagline produces an AI tagline suggestion
// @Summary Generate tagline
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.GenerateTaglineRequest true "Tagline inputs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/generate-tagline [post]
func (h *ProfileHandler) GenerateTagline(c *gin.Context) {
	var req profile.GenerateTaglineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	tagline, err := h.profileUseCase.GenerateTagline(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate tagline",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tagline": tagline})
}

// Block hides another creator from discovery in both directions
// @Summary Block a creator
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param creator_id path int true "Creator ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/block/{creator_id} [post]
func (h *ProfileHandler) Block(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	blockedID, err := strconv.Atoi(c.Param("creator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid creator id",
		})
		return
	}

	if err := h.profileUseCase.BlockCreator(c.Request.Context(), creatorID, blockedID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot block yourself",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to block creator",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "creator blocked",
	})
}

// Unblock removes a block
// @Summary Unblock a creator
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param creator_id path int true "Creator ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/block/{creator_id} [delete]
func (h *ProfileHandler) Unblock(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	blockedID, err := strconv.Atoi(c.Param("creator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid creator id",
		})
		return
	}

	if err := h.profileUseCase.UnblockCreator(c.Request.Context(), creatorID, blockedID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to unblock creator",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "creator unblocked",
	})
}
