package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/usecase/project"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUseCase *project.UseCase
}

func NewProjectHandler(projectUseCase *project.UseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

// Create opens a new collaboration listing
// @Summary Create project
// @Tags project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body project.CreateProjectRequest true "Project"
// @Success 201 {object} domain.Project
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	var req project.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	p, err := h.projectUseCase.CreateProject(c.Request.Context(), creatorID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create project",
		})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// List returns listings, optionally filtered by role and status
// @Summary List projects
// @Tags project
// @Security BearerAuth
// @Produce json
// @Param role query string false "Needed role"
// @Param status query string false "open or closed"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Project
// @Failure 500 {object} ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	role := c.Query("role")
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	projects, err := h.projectUseCase.ListProjects(c.Request.Context(), role, status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load projects",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// Get returns one listing
// @Summary Get project
// @Tags project
// @Security BearerAuth
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} domain.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{project_id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid project id",
		})
		return
	}

	p, err := h.projectUseCase.GetProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "project not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load project",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Update applies a partial update, owner only
// @Summary Update project
// @Tags project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body project.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} domain.Project
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{project_id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	projectID, err := strconv.Atoi(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid project id",
		})
		return
	}

	var req project.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	p, err := h.projectUseCase.UpdateProject(c.Request.Context(), creatorID, projectID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "project not found",
			})
		case errors.Is(err, domain.ErrNotProjectOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "not the project owner",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update project",
			})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// Apply submits an application to an open listing
// @Summary Apply to project
// @Tags project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body project.ApplyRequest true "Application"
// @Success 201 {object} domain.ProjectApplication
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{project_id}/apply [post]
func (h *ProjectHandler) Apply(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	projectID, err := strconv.Atoi(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid project id",
		})
		return
	}

	var req project.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	app, err := h.projectUseCase.Apply(c.Request.Context(), creatorID, projectID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "project not found",
			})
		case errors.Is(err, domain.ErrProjectClosed):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "project is closed",
			})
		case errors.Is(err, domain.ErrApplicationAlreadyExists):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "already applied",
			})
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot apply to your own project",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to apply",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListApplications returns a listing's applications, owner only
// @Summary List project applications
// @Tags project
// @Security BearerAuth
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {array} domain.ProjectApplication
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{project_id}/applications [get]
func (h *ProjectHandler) ListApplications(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	projectID, err := strconv.Atoi(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid project id",
		})
		return
	}

	apps, err := h.projectUseCase.ListProjectApplications(c.Request.Context(), creatorID, projectID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "project not found",
			})
		case errors.Is(err, domain.ErrNotProjectOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "not the project owner",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to load applications",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"count":        len(apps),
	})
}

// MyApplications returns the caller's applications
// @Summary My applications
// @Tags project
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.ProjectApplication
// @Failure 500 {object} ErrorResponse
// @Router /applications/mine [get]
func (h *ProjectHandler) MyApplications(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	apps, err := h.projectUseCase.MyApplications(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load applications",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"count":        len(apps),
	})
}

// Decide accepts or declines an application, owner only
// @Summary Decide application
// @Tags project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param application_id path int true "Application ID"
// @Param request body project.DecideRequest true "Decision"
// @Success 200 {object} domain.ProjectApplication
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/{application_id}/decide [post]
func (h *ProjectHandler) Decide(c *gin.Context) {
	creatorID := c.GetInt("creator_id")

	applicationID, err := strconv.Atoi(c.Param("application_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid application id",
		})
		return
	}

	var req project.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	app, err := h.projectUseCase.DecideApplication(c.Request.Context(), creatorID, applicationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound), errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "application not found",
			})
		case errors.Is(err, domain.ErrNotProjectOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "not the project owner",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to decide application",
			})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}
