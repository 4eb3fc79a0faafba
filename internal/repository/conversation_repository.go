package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	AddMember(ctx context.Context, conversationID uuid.UUID, creatorID int) error
	RemoveMember(ctx context.Context, conversationID uuid.UUID, creatorID int) error
	IsMember(ctx context.Context, conversationID uuid.UUID, creatorID int) (bool, error)
	GetMembers(ctx context.Context, conversationID uuid.UUID) ([]int, error)
	CreateMessage(ctx context.Context, msg *domain.Message) error
	GetMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*domain.Message, error)
	TouchLastMessage(ctx context.Context, conversationID uuid.UUID) error
}
