package repository

import (
	"context"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	List(ctx context.Context, role string, status string, limit, offset int) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error

	CreateApplication(ctx context.Context, app *domain.ProjectApplication) error
	GetApplicationByID(ctx context.Context, id int) (*domain.ProjectApplication, error)
	GetApplication(ctx context.Context, projectID, applicantID int) (*domain.ProjectApplication, error)
	ListApplicationsByProject(ctx context.Context, projectID int) ([]*domain.ProjectApplication, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID int) ([]*domain.ProjectApplication, error)
	UpdateApplicationStatus(ctx context.Context, id int, status string) error
}
