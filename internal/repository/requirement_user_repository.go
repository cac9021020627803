package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequirementUserRepository is a GORM implementation of RequirementUserRepository
type GormRequirementUserRepository struct {
	db *gorm.DB
}

var (
	// ErrSaveUser is returned when writing the user row fails inside the access transaction.
	ErrSaveUser = errors.New("requirement user repository: save user failed")
	// ErrReplacePageAccess is returned when rewriting the page access list fails.
	ErrReplacePageAccess = errors.New("requirement user repository: replace page access failed")
	// ErrReplaceFunctionalityAccess is returned when rewriting the functionality access list fails.
	ErrReplaceFunctionalityAccess = errors.New("requirement user repository: replace functionality access failed")
)

// NewRequirementUserRepository creates a new RequirementUserRepository
func NewRequirementUserRepository(db *gorm.DB) RequirementUserRepository {
	return &GormRequirementUserRepository{db: db}
}

// CreateWithAccess creates the user and its access rows atomically.
func (r *GormRequirementUserRepository) CreateWithAccess(ctx context.Context, user *models.RequirementUser, pageIDs, functionalityIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSaveUser, err)
		}

		if err := insertPageAccess(tx, user.ID, pageIDs); err != nil {
			return fmt.Errorf("%w: %v", ErrReplacePageAccess, err)
		}

		if err := insertFunctionalityAccess(tx, user.ID, functionalityIDs); err != nil {
			return fmt.Errorf("%w: %v", ErrReplaceFunctionalityAccess, err)
		}

		return nil
	})
}

// FindByID finds a user by ID with optional preloading
func (r *GormRequirementUserRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.RequirementUser, error) {
	var user models.RequirementUser
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// ListByProject lists the requirement users of a project
func (r *GormRequirementUserRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.RequirementUser, error) {
	users := []models.RequirementUser{}
	if err := r.db.WithContext(ctx).Scopes(database.ByProject(projectID)).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateWithAccess saves the user and applies replace-all semantics to every
// non-nil access list. A nil list leaves the existing rows untouched, an empty
// list clears them.
func (r *GormRequirementUserRepository) UpdateWithAccess(ctx context.Context, user *models.RequirementUser, pageIDs, functionalityIDs *[]uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRoot(tx, user); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveUser, err)
		}

		if pageIDs != nil {
			if err := tx.Scopes(database.ByUser(user.ID)).Delete(&models.UserPageAccess{}).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrReplacePageAccess, err)
			}
			if err := insertPageAccess(tx, user.ID, *pageIDs); err != nil {
				return fmt.Errorf("%w: %v", ErrReplacePageAccess, err)
			}
		}

		if functionalityIDs != nil {
			if err := tx.Scopes(database.ByUser(user.ID)).Delete(&models.UserFunctionalityAccess{}).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrReplaceFunctionalityAccess, err)
			}
			if err := insertFunctionalityAccess(tx, user.ID, *functionalityIDs); err != nil {
				return fmt.Errorf("%w: %v", ErrReplaceFunctionalityAccess, err)
			}
		}

		return nil
	})
}

// Delete deletes a user and its access rows in a transaction
func (r *GormRequirementUserRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteUserDependents(tx, []uint64{id}); err != nil {
			return err
		}
		return deleteRoot(tx, &models.RequirementUser{}, id)
	})
}

func insertPageAccess(tx *gorm.DB, userID uint64, pageIDs []uint64) error {
	if len(pageIDs) == 0 {
		return nil
	}

	rows := make([]models.UserPageAccess, len(pageIDs))
	for i, pageID := range pageIDs {
		rows[i] = models.UserPageAccess{
			UserID:    userID,
			PageID:    pageID,
			CanAccess: true,
		}
	}

	return tx.Create(&rows).Error
}

func insertFunctionalityAccess(tx *gorm.DB, userID uint64, functionalityIDs []uint64) error {
	if len(functionalityIDs) == 0 {
		return nil
	}

	rows := make([]models.UserFunctionalityAccess, len(functionalityIDs))
	for i, functionalityID := range functionalityIDs {
		rows[i] = models.UserFunctionalityAccess{
			UserID:          userID,
			FunctionalityID: functionalityID,
			CanAccess:       true,
		}
	}

	return tx.Create(&rows).Error
}
