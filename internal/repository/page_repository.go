package repository

import (
	"context"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPageRepository is a GORM implementation of PageRepository
type GormPageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new PageRepository
func NewPageRepository(db *gorm.DB) PageRepository {
	return &GormPageRepository{db: db}
}

// Create creates a new page
func (r *GormPageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(page).Error
}

// FindByID finds a page by ID with optional preloading
func (r *GormPageRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Page, error) {
	var page models.Page
	query := r.db.WithContext(ctx)

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&page, id).Error; err != nil {
		return nil, err
	}

	return &page, nil
}

// ListByProject lists the pages of a project
func (r *GormPageRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Page, error) {
	pages := []models.Page{}
	if err := r.db.WithContext(ctx).Scopes(database.ByProject(projectID)).Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Update updates a page
func (r *GormPageRepository) Update(ctx context.Context, page *models.Page) error {
	return updateRoot(r.db.WithContext(ctx), page)
}

// Delete deletes a page, its functionalities and every access row referencing them
func (r *GormPageRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deletePageDependents(tx, []uint64{id}); err != nil {
			return err
		}
		return deleteRoot(tx, &models.Page{}, id)
	})
}

// CountExisting counts how many of the given page IDs exist
func (r *GormPageRepository) CountExisting(ctx context.Context, pageIDs []uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Page{}).
		Where("id IN ?", pageIDs).
		Count(&count).Error
	return count, err
}
