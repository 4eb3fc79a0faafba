package message

import (
	"context"
	"fmt"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/realtime"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UseCase handles messaging inside match conversations. Channel access is
// membership-gated; unmatching revokes membership and with it all access.
type UseCase struct {
	convRepo  repository.ConversationRepository
	notifRepo repository.NotificationRepository
	publisher *realtime.Publisher
	logger    *zap.Logger
}

func NewUseCase(
	convRepo repository.ConversationRepository,
	notifRepo repository.NotificationRepository,
	publisher *realtime.Publisher,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		convRepo:  convRepo,
		notifRepo: notifRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// SendMessageRequest represents an outgoing message
type SendMessageRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// SendMessage posts a message to a conversation the sender is a member of.
// The message write is the only hard requirement; recency bump, notification
// and feed event are best-effort.
func (uc *UseCase) SendMessage(ctx context.Context, senderID int, conversationID uuid.UUID, req *SendMessageRequest) (*domain.Message, error) {
	isMember, err := uc.convRepo.IsMember(ctx, conversationID, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, domain.ErrNotConversationMember
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           req.Body,
	}
	if err := uc.convRepo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if err := uc.convRepo.TouchLastMessage(ctx, conversationID); err != nil {
		uc.logger.Warn("failed to bump conversation recency",
			zap.String("conversation_id", conversationID.String()), zap.Error(err))
	}

	uc.notifyRecipients(ctx, conversationID, senderID, msg)

	return msg, nil
}

func (uc *UseCase) notifyRecipients(ctx context.Context, conversationID uuid.UUID, senderID int, msg *domain.Message) {
	members, err := uc.convRepo.GetMembers(ctx, conversationID)
	if err != nil {
		uc.logger.Warn("failed to load conversation members",
			zap.String("conversation_id", conversationID.String()), zap.Error(err))
		return
	}

	for _, memberID := range members {
		if memberID == senderID {
			continue
		}
		n := &domain.Notification{
			CreatorID: memberID,
			Kind:      domain.NotificationKindMessage,
			Body:      "You have a new message",
		}
		if err := uc.notifRepo.Create(ctx, n); err != nil {
			uc.logger.Warn("failed to create message notification",
				zap.Int("creator_id", memberID), zap.Error(err))
		}
		uc.publisher.Publish(ctx, memberID, realtime.EventMessageCreated, map[string]interface{}{
			"conversation_id": conversationID.String(),
			"message_id":      msg.ID,
		})
	}
}

// ListMessages returns a page of messages, newest first. Non-members get
// ErrNotConversationMember rather than an empty page.
func (uc *UseCase) ListMessages(ctx context.Context, viewerID int, conversationID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	isMember, err := uc.convRepo.IsMember(ctx, conversationID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, domain.ErrNotConversationMember
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.convRepo.GetMessages(ctx, conversationID, limit, offset)
}
