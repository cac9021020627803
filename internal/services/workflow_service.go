package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkflowService handles workflow business logic
type WorkflowService struct {
	workflowRepo repository.WorkflowRepository
	projectRepo  repository.ProjectRepository
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(workflowRepo repository.WorkflowRepository, projectRepo repository.ProjectRepository) *WorkflowService {
	return &WorkflowService{
		workflowRepo: workflowRepo,
		projectRepo:  projectRepo,
	}
}

type CreateWorkflowInput struct {
	ProjectID     uint64
	Name          string
	Description   *string
	FlowchartData datatypes.JSON
}

// UpdateWorkflowInput leaves nil fields unchanged. A JSON null in
// FlowchartData clears the graph.
type UpdateWorkflowInput struct {
	Name          *string
	Description   *string
	FlowchartData datatypes.JSON
}

func (s *WorkflowService) ListWorkflowsByProject(ctx context.Context, projectID uint64) ([]models.Workflow, error) {
	workflows, err := s.workflowRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return workflows, nil
}

func (s *WorkflowService) GetWorkflow(ctx context.Context, id uint64) (*models.Workflow, error) {
	workflow, err := s.workflowRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("failed to find workflow: %w", err)
	}
	return workflow, nil
}

// CreateWorkflow stores a flowchart for an existing project. The graph is kept
// verbatim, whatever its shape.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, input CreateWorkflowInput) (*models.Workflow, error) {
	if input.ProjectID == 0 || isBlank(input.Name) {
		return nil, ErrWorkflowFieldsRequired
	}
	if err := ensureProject(ctx, s.projectRepo, input.ProjectID); err != nil {
		return nil, err
	}

	workflow := &models.Workflow{
		ProjectID:     input.ProjectID,
		Name:          input.Name,
		Description:   optionalText(input.Description),
		FlowchartData: optionalJSON(input.FlowchartData),
	}

	if err := s.workflowRepo.Create(ctx, workflow); err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	return workflow, nil
}

func (s *WorkflowService) UpdateWorkflow(ctx context.Context, id uint64, input UpdateWorkflowInput) (*models.Workflow, error) {
	workflow, err := s.GetWorkflow(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if isBlank(*input.Name) {
			return nil, ErrWorkflowNameEmpty
		}
		workflow.Name = *input.Name
	}
	if input.Description != nil {
		workflow.Description = optionalText(input.Description)
	}
	if input.FlowchartData != nil {
		workflow.FlowchartData = optionalJSON(input.FlowchartData)
	}

	if err := s.workflowRepo.Update(ctx, workflow); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("failed to update workflow: %w", err)
	}

	return workflow, nil
}

func (s *WorkflowService) DeleteWorkflow(ctx context.Context, id uint64) error {
	if err := s.workflowRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkflowNotFound
		}
		return fmt.Errorf("failed to delete workflow: %w", err)
	}
	return nil
}
