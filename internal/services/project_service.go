package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/repository"
	"gorm.io/gorm"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name        string
	Description *string
}

// UpdateProjectInput represents input for updating a project. Nil fields are
// left unchanged.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// ListProjects returns every project
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if isBlank(input.Name) {
		return nil, ErrProjectNameRequired
	}

	project := &models.Project{
		Name:        input.Name,
		Description: optionalText(input.Description),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject updates the supplied fields of a project
func (s *ProjectService) UpdateProject(ctx context.Context, id uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if isBlank(*input.Name) {
			return nil, ErrProjectNameEmpty
		}
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = optionalText(input.Description)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject deletes a project together with everything it owns
func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ensureProject reports ErrParentProjectNotFound when a child references a
// project that does not exist
func ensureProject(ctx context.Context, repo repository.ProjectRepository, projectID uint64) error {
	if _, err := repo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParentProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}
	return nil
}
