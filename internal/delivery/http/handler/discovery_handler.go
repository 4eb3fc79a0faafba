package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/usecase/discovery"
	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.UseCase
	settleDelayMs    int
}

// settleDelayMs is handed to clients so the card settle animation window
// matches the server's expectation.
func NewDiscoveryHandler(discoveryUseCase *discovery.UseCase, settleDelayMs int) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
		settleDelayMs:    settleDelayMs,
	}
}

// GestureRequest represents one pointer event in a swipe drag
type GestureRequest struct {
	Event string  `json:"event" binding:"required,oneof=down move up"`
	X     float64 `json:"x"`
}

// KeyboardRequest represents an arrow-key decision
type KeyboardRequest struct {
	Key string `json:"key" binding:"required"`
}

// DecisionResponse reports the outcome of a gesture or key event
type DecisionResponse struct {
	Decision string `json:"decision"`
}

// GetPool returns the viewer's filtered candidate pool
// @Summary Get candidate pool
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Candidate
// @Failure 500 {object} ErrorResponse
// @Router /discovery/pool [get]
func (h *DiscoveryHandler) GetPool(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	session, err := h.discoveryUseCase.GetSession(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load candidate pool",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates":      session.Pool(),
		"filter":          session.Spec(),
		"settle_delay_ms": h.settleDelayMs,
	})
}

// SetFilter replaces the active filter and returns the re-filtered pool
// @Summary Set discovery filter
// @Tags discovery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body discovery.FilterSpec true "Filter"
// @Success 200 {array} domain.Candidate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/filter [put]
func (h *DiscoveryHandler) SetFilter(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	var spec discovery.FilterSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid filter",
		})
		return
	}

	pool, err := h.discoveryUseCase.SetFilter(c.Request.Context(), creatorID, spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to apply filter",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": pool,
		"filter":     spec,
	})
}

// Reload refetches the raw pool from the server, reconciling local state
// @Summary Reload candidate pool
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Candidate
// @Failure 500 {object} ErrorResponse
// @Router /discovery/reload [post]
func (h *DiscoveryHandler) Reload(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	session, err := h.discoveryUseCase.Reload(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to reload candidate pool",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": session.Pool(),
		"filter":     session.Spec(),
	})
}

// Like records a like on a candidate
// @Summary Like a candidate
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param creator_id path int true "Candidate creator ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/like/{creator_id} [post]
func (h *DiscoveryHandler) Like(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	subjectID, err := strconv.Atoi(c.Param("creator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid creator id",
		})
		return
	}

	session, err := h.discoveryUseCase.GetSession(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load session",
		})
		return
	}

	if err := session.Like(c.Request.Context(), subjectID); err != nil {
		if errors.Is(err, domain.ErrCannotSwipeSelf) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot swipe yourself",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to record like",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "like recorded",
	})
}

// Pass dismisses a candidate
// @Summary Pass on a candidate
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param creator_id path int true "Candidate creator ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/pass/{creator_id} [post]
func (h *DiscoveryHandler) Pass(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	subjectID, err := strconv.Atoi(c.Param("creator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid creator id",
		})
		return
	}

	session, err := h.discoveryUseCase.GetSession(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load session",
		})
		return
	}

	if err := session.Pass(c.Request.Context(), subjectID); err != nil {
		if errors.Is(err, domain.ErrCannotSwipeSelf) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot swipe yourself",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to record pass",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "pass recorded",
	})
}

// Gesture feeds a pointer event into the swipe state machine. Only the "up"
// event can resolve to a decision.
// @Summary Pointer gesture event
// @Tags discovery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body GestureRequest true "Pointer event"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/gesture [post]
func (h *DiscoveryHandler) Gesture(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	var req GestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	session, err := h.discoveryUseCase.GetSession(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load session",
		})
		return
	}

	var decision discovery.Decision
	switch req.Event {
	case "down":
		session.PointerDown(req.X)
	case "move":
		session.PointerMove(req.X)
	case "up":
		decision, err = session.PointerUp(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to record swipe",
			})
			return
		}
	}

	c.JSON(http.StatusOK, DecisionResponse{
		Decision: string(decision),
	})
}

// Keyboard applies an arrow-key decision to the current candidate
// @Summary Keyboard decision
// @Tags discovery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body KeyboardRequest true "Key event"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/keyboard [post]
func (h *DiscoveryHandler) Keyboard(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	var req KeyboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	session, err := h.discoveryUseCase.GetSession(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load session",
		})
		return
	}

	decision, err := session.Keyboard(c.Request.Context(), req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to record swipe",
		})
		return
	}

	c.JSON(http.StatusOK, DecisionResponse{
		Decision: string(decision),
	})
}
