package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/realtime"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"go.uber.org/zap"
)

// UseCase manages collaboration listings and their applications.
type UseCase struct {
	projectRepo repository.ProjectRepository
	notifRepo   repository.NotificationRepository
	publisher   *realtime.Publisher
	logger      *zap.Logger
}

func NewUseCase(
	projectRepo repository.ProjectRepository,
	notifRepo repository.NotificationRepository,
	publisher *realtime.Publisher,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		projectRepo: projectRepo,
		notifRepo:   notifRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreateProjectRequest represents a new listing
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=150"`
	Description string   `json:"description" binding:"required,min=10,max=5000"`
	RolesNeeded []string `json:"roles_needed" binding:"required,min=1,taglist"`
}

// UpdateProjectRequest represents a partial listing update
type UpdateProjectRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=3,max=150"`
	Description *string   `json:"description" binding:"omitempty,min=10,max=5000"`
	RolesNeeded *[]string `json:"roles_needed" binding:"omitempty,min=1,taglist"`
	Status      *string   `json:"status" binding:"omitempty,oneof=open closed"`
}

// ApplyRequest represents an application to a listing
type ApplyRequest struct {
	Pitch *string `json:"pitch" binding:"omitempty,max=2000"`
}

// DecideRequest accepts or declines one application
type DecideRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}

// CreateProject opens a new listing owned by the caller
func (uc *UseCase) CreateProject(ctx context.Context, ownerID int, req *CreateProjectRequest) (*domain.Project, error) {
	project := &domain.Project{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		RolesNeeded: req.RolesNeeded,
		Status:      domain.ProjectStatusOpen,
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListProjects returns listings, optionally filtered by needed role and status
func (uc *UseCase) ListProjects(ctx context.Context, role, status string, limit, offset int) ([]*domain.Project, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.projectRepo.List(ctx, role, status, limit, offset)
}

// GetProject returns one listing
func (uc *UseCase) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

// UpdateProject applies a partial update, owner only
func (uc *UseCase) UpdateProject(ctx context.Context, callerID, projectID int, req *UpdateProjectRequest) (*domain.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != callerID {
		return nil, domain.ErrNotProjectOwner
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.RolesNeeded != nil {
		project.RolesNeeded = *req.RolesNeeded
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Apply submits an application to an open listing. Owners cannot apply to
// their own listing and each creator applies at most once.
func (uc *UseCase) Apply(ctx context.Context, applicantID, projectID int, req *ApplyRequest) (*domain.ProjectApplication, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status != domain.ProjectStatusOpen {
		return nil, domain.ErrProjectClosed
	}
	if project.OwnerID == applicantID {
		return nil, domain.ErrInvalidInput
	}

	app := &domain.ProjectApplication{
		ProjectID:   projectID,
		ApplicantID: applicantID,
		Pitch:       req.Pitch,
		Status:      domain.ApplicationStatusPending,
	}
	if err := uc.projectRepo.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, domain.ErrApplicationAlreadyExists) {
			return nil, domain.ErrApplicationAlreadyExists
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	n := &domain.Notification{
		CreatorID: project.OwnerID,
		Kind:      domain.NotificationKindApplication,
		Body:      fmt.Sprintf("New application for %s", project.Title),
	}
	if err := uc.notifRepo.Create(ctx, n); err != nil {
		uc.logger.Warn("failed to create application notification",
			zap.Int("creator_id", project.OwnerID), zap.Error(err))
	}

	return app, nil
}

// ListProjectApplications returns a listing's applications, owner only
func (uc *UseCase) ListProjectApplications(ctx context.Context, callerID, projectID int) ([]*domain.ProjectApplication, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != callerID {
		return nil, domain.ErrNotProjectOwner
	}
	return uc.projectRepo.ListApplicationsByProject(ctx, projectID)
}

// MyApplications returns the caller's own applications
func (uc *UseCase) MyApplications(ctx context.Context, applicantID int) ([]*domain.ProjectApplication, error) {
	return uc.projectRepo.ListApplicationsByApplicant(ctx, applicantID)
}

// DecideApplication accepts or declines an application, owner only. The
// applicant is notified and receives a change-feed event either way.
func (uc *UseCase) DecideApplication(ctx context.Context, callerID, applicationID int, req *DecideRequest) (*domain.ProjectApplication, error) {
	app, err := uc.projectRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	project, err := uc.projectRepo.GetByID(ctx, app.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != callerID {
		return nil, domain.ErrNotProjectOwner
	}

	if err := uc.projectRepo.UpdateApplicationStatus(ctx, applicationID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	app.Status = req.Status

	body := fmt.Sprintf("Your application for %s was %s", project.Title, req.Status)
	n := &domain.Notification{
		CreatorID: app.ApplicantID,
		Kind:      domain.NotificationKindApplication,
		Body:      body,
	}
	if err := uc.notifRepo.Create(ctx, n); err != nil {
		uc.logger.Warn("failed to create decision notification",
			zap.Int("creator_id", app.ApplicantID), zap.Error(err))
	}

	uc.publisher.Publish(ctx, app.ApplicantID, realtime.EventApplicationDecided, map[string]interface{}{
		"application_id": app.ID,
		"project_id":     project.ID,
		"status":         app.Status,
	})

	return app, nil
}
