package domain

import (
	"time"

	"github.com/google/uuid"
)

// Match is a derived relationship between two creators. The pair is
// normalized so user1_id < user2_id, which backs the unique constraint.
type Match struct {
	ID             int        `json:"id" db:"id"`
	User1ID        int        `json:"user1_id" db:"user1_id"`
	User2ID        int        `json:"user2_id" db:"user2_id"`
	IsMutual       bool       `json:"is_mutual" db:"is_mutual"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	ConversationID *uuid.UUID `json:"conversation_id" db:"conversation_id"`
	Icebreakers    []string   `json:"icebreakers" db:"icebreakers"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID int) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) GetOtherUserID(userID int) (int, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return 0, false
}

// NormalizePair orders a pair of user ids for match storage.
func NormalizePair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
