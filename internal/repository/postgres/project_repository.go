package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (owner_id, title, description, roles_needed, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		project.OwnerID, project.Title, project.Description,
		pq.Array(project.RolesNeeded), project.Status,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	var project domain.Project
	query := `
		SELECT id, owner_id, title, description, roles_needed, status, created_at, updated_at
		FROM projects WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID, &project.OwnerID, &project.Title, &project.Description,
		pq.Array(&project.RolesNeeded), &project.Status,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, role string, status string, limit, offset int) ([]*domain.Project, error) {
	query := `
		SELECT id, owner_id, title, description, roles_needed, status, created_at, updated_at
		FROM projects WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if role != "" {
		query += fmt.Sprintf(" AND $%d = ANY(roles_needed)", argCount)
		args = append(args, role)
		argCount++
	}

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, status)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID, &project.OwnerID, &project.Title, &project.Description,
			pq.Array(&project.RolesNeeded), &project.Status,
			&project.CreatedAt, &project.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, roles_needed = $3, status = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		project.Title, project.Description, pq.Array(project.RolesNeeded),
		project.Status, project.ID,
	).Scan(&project.UpdatedAt)
}

func (r *projectRepository) CreateApplication(ctx context.Context, app *domain.ProjectApplication) error {
	query := `
		INSERT INTO project_applications (project_id, applicant_id, pitch, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		app.ProjectID, app.ApplicantID, app.Pitch, app.Status,
	).Scan(&app.ID, &app.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrApplicationAlreadyExists
	}
	return err
}

func (r *projectRepository) GetApplicationByID(ctx context.Context, id int) (*domain.ProjectApplication, error) {
	var app domain.ProjectApplication
	query := `SELECT * FROM project_applications WHERE id = $1`
	err := r.db.GetContext(ctx, &app, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *projectRepository) GetApplication(ctx context.Context, projectID, applicantID int) (*domain.ProjectApplication, error) {
	var app domain.ProjectApplication
	query := `SELECT * FROM project_applications WHERE project_id = $1 AND applicant_id = $2`
	err := r.db.GetContext(ctx, &app, query, projectID, applicantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *projectRepository) ListApplicationsByProject(ctx context.Context, projectID int) ([]*domain.ProjectApplication, error) {
	var apps []*domain.ProjectApplication
	query := `
		SELECT * FROM project_applications
		WHERE project_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &apps, query, projectID)
	return apps, err
}

func (r *projectRepository) ListApplicationsByApplicant(ctx context.Context, applicantID int) ([]*domain.ProjectApplication, error) {
	var apps []*domain.ProjectApplication
	query := `
		SELECT * FROM project_applications
		WHERE applicant_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &apps, query, applicantID)
	return apps, err
}

func (r *projectRepository) UpdateApplicationStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE project_applications SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}
