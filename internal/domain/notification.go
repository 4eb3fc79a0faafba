package domain

import "time"

const (
	NotificationKindMatch       = "match"
	NotificationKindMessage     = "message"
	NotificationKindApplication = "application"
)

type Notification struct {
	ID        int       `json:"id" db:"id"`
	CreatorID int       `json:"creator_id" db:"creator_id"`
	Kind      string    `json:"kind" db:"kind"`
	Body      string    `json:"body" db:"body"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
