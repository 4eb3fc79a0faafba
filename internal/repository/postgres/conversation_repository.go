package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}
	query := `
		INSERT INTO conversations (id)
		VALUES ($1)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, conv.ID).Scan(&conv.CreatedAt)
}

func (r *conversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	var conv domain.Conversation
	query := `SELECT * FROM conversations WHERE id = $1`
	err := r.db.GetContext(ctx, &conv, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) AddMember(ctx context.Context, conversationID uuid.UUID, creatorID int) error {
	query := `
		INSERT INTO conversation_members (conversation_id, creator_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, conversationID, creatorID)
	return err
}

func (r *conversationRepository) RemoveMember(ctx context.Context, conversationID uuid.UUID, creatorID int) error {
	query := `DELETE FROM conversation_members WHERE conversation_id = $1 AND creator_id = $2`
	_, err := r.db.ExecContext(ctx, query, conversationID, creatorID)
	return err
}

func (r *conversationRepository) IsMember(ctx context.Context, conversationID uuid.UUID, creatorID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM conversation_members
			WHERE conversation_id = $1 AND creator_id = $2
		)
	`
	err := r.db.GetContext(ctx, &exists, query, conversationID, creatorID)
	return exists, err
}

func (r *conversationRepository) GetMembers(ctx context.Context, conversationID uuid.UUID) ([]int, error) {
	var members []int
	query := `SELECT creator_id FROM conversation_members WHERE conversation_id = $1`
	err := r.db.SelectContext(ctx, &members, query, conversationID)
	return members, err
}

func (r *conversationRepository) CreateMessage(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (conversation_id, sender_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, msg.ConversationID, msg.SenderID, msg.Body).
		Scan(&msg.ID, &msg.CreatedAt)
}

func (r *conversationRepository) GetMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &messages, query, conversationID, limit, offset)
	return messages, err
}

func (r *conversationRepository) TouchLastMessage(ctx context.Context, conversationID uuid.UUID) error {
	query := `UPDATE conversations SET last_message_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, conversationID)
	return err
}
