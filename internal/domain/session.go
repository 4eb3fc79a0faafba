package domain

import "time"

// Session is a server-side record of an issued JWT; the token column
// stores a SHA256 hash, never the raw token.
type Session struct {
	ID         int       `json:"id" db:"id"`
	CreatorID  int       `json:"creator_id" db:"creator_id"`
	Token      string    `json:"-" db:"token"`
	DeviceInfo *string   `json:"device_info" db:"device_info"`
	IPAddress  *string   `json:"ip_address" db:"ip_address"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
