package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/dto"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns every project
func (h *ProjectHandler) ListProjects(c *gin.Context) error {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, projects)
	return nil
}

// GetProject returns a project by ID
func (h *ProjectHandler) GetProject(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, project)
	return nil
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) error {
	var req dto.CreateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, project)
	return nil
}

// UpdateProject updates the fields present in the body
func (h *ProjectHandler) UpdateProject(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, project)
	return nil
}

// DeleteProject deletes a project and everything it owns
func (h *ProjectHandler) DeleteProject(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted successfully"})
	return nil
}
