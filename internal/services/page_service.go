package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/repository"
	"gorm.io/gorm"
)

// PageService handles page business logic
type PageService struct {
	pageRepo    repository.PageRepository
	projectRepo repository.ProjectRepository
}

// NewPageService creates a new PageService
func NewPageService(pageRepo repository.PageRepository, projectRepo repository.ProjectRepository) *PageService {
	return &PageService{
		pageRepo:    pageRepo,
		projectRepo: projectRepo,
	}
}

// CreatePageInput represents input for creating a page
type CreatePageInput struct {
	ProjectID   uint64
	Name        string
	Description *string
}

// UpdatePageInput represents input for updating a page
type UpdatePageInput struct {
	Name        *string
	Description *string
}

// ListPagesByProject returns the pages of a project
func (s *PageService) ListPagesByProject(ctx context.Context, projectID uint64) ([]models.Page, error) {
	pages, err := s.pageRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return pages, nil
}

// GetPage returns a page with its functionalities
func (s *PageService) GetPage(ctx context.Context, id uint64) (*models.Page, error) {
	page, err := s.pageRepo.FindByID(ctx, id, "Functionalities")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to find page: %w", err)
	}
	return page, nil
}

// CreatePage creates a page in an existing project
func (s *PageService) CreatePage(ctx context.Context, input CreatePageInput) (*models.Page, error) {
	if input.ProjectID == 0 || isBlank(input.Name) {
		return nil, ErrPageFieldsRequired
	}

	if err := ensureProject(ctx, s.projectRepo, input.ProjectID); err != nil {
		return nil, err
	}

	page := &models.Page{
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Description: optionalText(input.Description),
	}

	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return page, nil
}

// UpdatePage updates the supplied fields of a page
func (s *PageService) UpdatePage(ctx context.Context, id uint64, input UpdatePageInput) (*models.Page, error) {
	page, err := s.pageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to find page: %w", err)
	}

	if input.Name != nil {
		if isBlank(*input.Name) {
			return nil, ErrPageNameEmpty
		}
		page.Name = *input.Name
	}
	if input.Description != nil {
		page.Description = optionalText(input.Description)
	}

	if err := s.pageRepo.Update(ctx, page); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	return page, nil
}

// DeletePage deletes a page with its functionalities and access rows
func (s *PageService) DeletePage(ctx context.Context, id uint64) error {
	if err := s.pageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageNotFound
		}
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return nil
}
