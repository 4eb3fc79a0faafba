package domain

import "time"

// Creator is an account. Profile holds the public-facing fields.
type Creator struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	IsFlagged    bool      `json:"-" db:"is_flagged"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
