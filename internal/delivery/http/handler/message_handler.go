package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageUseCase *message.UseCase
}

func NewMessageHandler(messageUseCase *message.UseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// SendMessage posts a message to a conversation
// @Summary Send message
// @Tags message
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Param request body message.SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations/{conversation_id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	conversationID, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid conversation id",
		})
		return
	}

	var req message.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	msg, err := h.messageUseCase.SendMessage(c.Request.Context(), creatorID, conversationID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotConversationMember) {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "not a conversation member",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to send message",
		})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages returns a page of messages, newest first
// @Summary List messages
// @Tags message
// @Security BearerAuth
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations/{conversation_id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	conversationID, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid conversation id",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.messageUseCase.ListMessages(c.Request.Context(), creatorID, conversationID, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotConversationMember) {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "not a conversation member",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load messages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}
