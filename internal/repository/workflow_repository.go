package repository

import (
	"context"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/gorm"
)

// GormWorkflowRepository is a GORM implementation of WorkflowRepository
type GormWorkflowRepository struct {
	db *gorm.DB
}

// NewWorkflowRepository creates a new WorkflowRepository
func NewWorkflowRepository(db *gorm.DB) WorkflowRepository {
	return &GormWorkflowRepository{db: db}
}

func (r *GormWorkflowRepository) Create(ctx context.Context, workflow *models.Workflow) error {
	return r.db.WithContext(ctx).Create(workflow).Error
}

func (r *GormWorkflowRepository) FindByID(ctx context.Context, id uint64) (*models.Workflow, error) {
	var workflow models.Workflow
	if err := r.db.WithContext(ctx).First(&workflow, id).Error; err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (r *GormWorkflowRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Workflow, error) {
	workflows := []models.Workflow{}
	if err := r.db.WithContext(ctx).Scopes(database.ByProject(projectID)).Find(&workflows).Error; err != nil {
		return nil, err
	}
	return workflows, nil
}

func (r *GormWorkflowRepository) Update(ctx context.Context, workflow *models.Workflow) error {
	return updateRoot(r.db.WithContext(ctx), workflow)
}

// Delete removes the workflow; nothing references workflows
func (r *GormWorkflowRepository) Delete(ctx context.Context, id uint64) error {
	return deleteRoot(r.db.WithContext(ctx), &models.Workflow{}, id)
}
