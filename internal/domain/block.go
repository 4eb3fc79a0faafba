package domain

import "time"

type Block struct {
	ID        int       `json:"id" db:"id"`
	BlockerID int       `json:"blocker_id" db:"blocker_id"`
	BlockedID int       `json:"blocked_id" db:"blocked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
