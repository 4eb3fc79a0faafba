package domain

import "time"

// Candidate is the discovery read model: a profile joined with the
// account-level verification flag and creation time. Snapshot only; once
// loaded into a pool it is never revalidated, just removed on like/pass.
type Candidate struct {
	CreatorID   int       `json:"creator_id" db:"creator_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Handle      string    `json:"handle" db:"handle"`
	Roles       []string  `json:"roles" db:"roles"`
	Skills      []string  `json:"skills" db:"skills"`
	LookingFor  []string  `json:"looking_for" db:"looking_for"`
	Tagline     *string   `json:"tagline" db:"tagline"`
	VibeWords   []string  `json:"vibe_words" db:"vibe_words"`
	Location    *string   `json:"location" db:"location"`
	Remote      bool      `json:"remote" db:"remote"`
	AvatarURL   *string   `json:"avatar_url" db:"avatar_url"`
	Verified    bool      `json:"verified" db:"verified"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
