package repository

import (
	"context"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFunctionalityRepository is a GORM implementation of FunctionalityRepository
type GormFunctionalityRepository struct {
	db *gorm.DB
}

// NewFunctionalityRepository creates a new FunctionalityRepository
func NewFunctionalityRepository(db *gorm.DB) FunctionalityRepository {
	return &GormFunctionalityRepository{db: db}
}

// Create creates a new functionality
func (r *GormFunctionalityRepository) Create(ctx context.Context, functionality *models.Functionality) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(functionality).Error
}

// FindByID finds a functionality by ID
func (r *GormFunctionalityRepository) FindByID(ctx context.Context, id uint64) (*models.Functionality, error) {
	var functionality models.Functionality
	if err := r.db.WithContext(ctx).First(&functionality, id).Error; err != nil {
		return nil, err
	}
	return &functionality, nil
}

// ListByPage lists the functionalities of a page
func (r *GormFunctionalityRepository) ListByPage(ctx context.Context, pageID uint64) ([]models.Functionality, error) {
	functionalities := []models.Functionality{}
	if err := r.db.WithContext(ctx).Scopes(database.ByPage(pageID)).Find(&functionalities).Error; err != nil {
		return nil, err
	}
	return functionalities, nil
}

// Update updates a functionality
func (r *GormFunctionalityRepository) Update(ctx context.Context, functionality *models.Functionality) error {
	return updateRoot(r.db.WithContext(ctx), functionality)
}

// Delete deletes a functionality and its access rows
func (r *GormFunctionalityRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteFunctionalityDependents(tx, []uint64{id}); err != nil {
			return err
		}
		return deleteRoot(tx, &models.Functionality{}, id)
	})
}

// CountExisting counts how many of the given functionality IDs exist
func (r *GormFunctionalityRepository) CountExisting(ctx context.Context, functionalityIDs []uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Functionality{}).
		Where("id IN ?", functionalityIDs).
		Count(&count).Error
	return count, err
}
