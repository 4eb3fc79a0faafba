package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUseCase *swipe.UseCase
}

func NewSwipeHandler(swipeUseCase *swipe.UseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// GetLikesReceived returns creators who liked the viewer
// @Summary Get likes received
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} swipe.LikeReceivedResponse
// @Failure 500 {object} ErrorResponse
// @Router /swipe/likes-received [get]
func (h *SwipeHandler) GetLikesReceived(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	likes, err := h.swipeUseCase.GetLikesReceived(c.Request.Context(), creatorID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load likes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"likes": likes,
		"count": len(likes),
	})
}

// ResetPasses clears the viewer's pass history so dismissed candidates can
// reappear on the next pool reload
// @Summary Reset passes
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /swipe/reset-passes [post]
func (h *SwipeHandler) ResetPasses(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	count, err := h.swipeUseCase.ResetPasses(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to reset passes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "passes reset",
		"count":   count,
	})
}

// DeleteSwipe removes one swipe (undo)
// @Summary Delete a swipe
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Param creator_id path int true "Subject creator ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /swipe/{creator_id} [delete]
func (h *SwipeHandler) DeleteSwipe(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	subjectID, err := strconv.Atoi(c.Param("creator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid creator id",
		})
		return
	}

	if err := h.swipeUseCase.DeleteSwipe(c.Request.Context(), creatorID, subjectID); err != nil {
		if errors.Is(err, domain.ErrSwipeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "swipe not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete swipe",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "swipe deleted",
	})
}
