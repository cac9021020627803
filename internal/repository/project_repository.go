package repository

import (
	"context"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves every project
func (r *GormProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return updateRoot(r.db.WithContext(ctx), project)
}

// Delete deletes a project and all related data in a transaction
func (r *GormProjectRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userIDs, pageIDs []uint64
		if err := tx.Model(&models.RequirementUser{}).Scopes(database.ByProject(id)).Pluck("id", &userIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Page{}).Scopes(database.ByProject(id)).Pluck("id", &pageIDs).Error; err != nil {
			return err
		}

		if err := deleteUserDependents(tx, userIDs); err != nil {
			return err
		}
		if err := deletePageDependents(tx, pageIDs); err != nil {
			return err
		}

		// Delete the project's own children
		for _, child := range []interface{}{&models.RequirementUser{}, &models.Page{}, &models.Workflow{}} {
			if err := tx.Scopes(database.ByProject(id)).Delete(child).Error; err != nil {
				return err
			}
		}

		return deleteRoot(tx, &models.Project{}, id)
	})
}
