package domain

import "time"

type Profile struct {
	ID                   int       `json:"id" db:"id"`
	CreatorID            int       `json:"creator_id" db:"creator_id"`
	DisplayName          string    `json:"display_name" db:"display_name"`
	Handle               string    `json:"handle" db:"handle"`
	Roles                []string  `json:"roles" db:"roles"`
	Skills               []string  `json:"skills" db:"skills"`
	LookingFor           []string  `json:"looking_for" db:"looking_for"`
	Tagline              *string   `json:"tagline" db:"tagline"`
	VibeWords            []string  `json:"vibe_words" db:"vibe_words"`
	Location             *string   `json:"location" db:"location"`
	Remote               bool      `json:"remote" db:"remote"`
	AvatarURL            *string   `json:"avatar_url" db:"avatar_url"`
	IsOnboardingComplete bool      `json:"is_onboarding_complete" db:"is_onboarding_complete"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}
