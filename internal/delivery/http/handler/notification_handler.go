package handler

import (
	"net/http"
	"strconv"

	"github.com/craftlink/craftlink-backend/internal/usecase/notification"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUseCase *notification.UseCase
}

func NewNotificationHandler(notificationUseCase *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

// List returns the creator's notifications
// @Summary List notifications
// @Tags notification
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Notification
// @Failure 500 {object} ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.notificationUseCase.List(c.Request.Context(), creatorID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load notifications",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkRead marks one notification as read
// @Summary Mark notification read
// @Tags notification
// @Security BearerAuth
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/{notification_id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	notificationID, err := strconv.Atoi(c.Param("notification_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid notification id",
		})
		return
	}

	if err := h.notificationUseCase.MarkRead(c.Request.Context(), creatorID, notificationID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to mark notification read",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "notification marked read",
	})
}
