package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the message channel attached to a match.
type Conversation struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	LastMessageAt *time.Time `json:"last_message_at" db:"last_message_at"`
}

type ConversationMember struct {
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	CreatorID      int       `json:"creator_id" db:"creator_id"`
	JoinedAt       time.Time `json:"joined_at" db:"joined_at"`
}

type Message struct {
	ID             int       `json:"id" db:"id"`
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	SenderID       int       `json:"sender_id" db:"sender_id"`
	Body           string    `json:"body" db:"body"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
