package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.UseCase
}

func NewMatchHandler(matchUseCase *match.UseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// GetMatches returns the viewer's active matches
// @Summary Get matches
// @Tags match
// @Security BearerAuth
// @Produce json
// @Success 200 {array} match.MatchResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	matches, err := h.matchUseCase.GetMatches(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load matches",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// Unmatch removes a match and both conversation memberships
// @Summary Unmatch
// @Tags match
// @Security BearerAuth
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/{match_id} [delete]
func (h *MatchHandler) Unmatch(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid match id",
		})
		return
	}

	if err := h.matchUseCase.Unmatch(c.Request.Context(), creatorID, matchID); err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "match not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to unmatch",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "unmatched",
	})
}
