package domain

import "time"

const (
	ProjectStatusOpen   = "open"
	ProjectStatusClosed = "closed"

	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusDeclined = "declined"
)

// Project is a collaboration listing a creator can apply to.
type Project struct {
	ID          int       `json:"id" db:"id"`
	OwnerID     int       `json:"owner_id" db:"owner_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	RolesNeeded []string  `json:"roles_needed" db:"roles_needed"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectApplication is unique per (project, applicant).
type ProjectApplication struct {
	ID          int       `json:"id" db:"id"`
	ProjectID   int       `json:"project_id" db:"project_id"`
	ApplicantID int       `json:"applicant_id" db:"applicant_id"`
	Pitch       *string   `json:"pitch" db:"pitch"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
