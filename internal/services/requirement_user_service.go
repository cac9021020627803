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

// RequirementUserService handles requirement users and their access lists
type RequirementUserService struct {
	userRepo          repository.RequirementUserRepository
	projectRepo       repository.ProjectRepository
	pageRepo          repository.PageRepository
	functionalityRepo repository.FunctionalityRepository
}

// NewRequirementUserService creates a new RequirementUserService
func NewRequirementUserService(
	userRepo repository.RequirementUserRepository,
	projectRepo repository.ProjectRepository,
	pageRepo repository.PageRepository,
	functionalityRepo repository.FunctionalityRepository,
) *RequirementUserService {
	return &RequirementUserService{
		userRepo:          userRepo,
		projectRepo:       projectRepo,
		pageRepo:          pageRepo,
		functionalityRepo: functionalityRepo,
	}
}

// CreateUserInput represents input for creating a requirement user
type CreateUserInput struct {
	ProjectID           uint64
	Name                string
	Description         *string
	Privileges          []string
	PageAccess          []uint64
	FunctionalityAccess []uint64
}

// UpdateUserInput represents input for updating a requirement user. A nil
// access list keeps the stored rows, a non-nil list (even empty) replaces them.
type UpdateUserInput struct {
	Name                *string
	Description         *string
	Privileges          *[]string
	PageAccess          *[]uint64
	FunctionalityAccess *[]uint64
}

// ListUsersByProject returns the requirement users of a project
func (s *RequirementUserService) ListUsersByProject(ctx context.Context, projectID uint64) ([]models.RequirementUser, error) {
	users, err := s.userRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user with its page and functionality access rows
func (s *RequirementUserService) GetUser(ctx context.Context, id uint64) (*models.RequirementUser, error) {
	user, err := s.userRepo.FindByID(ctx, id, "PageAccess", "FunctionalityAccess")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser creates a user and grants it the listed pages and
// functionalities. Nothing is stored unless every row can be written.
func (s *RequirementUserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.RequirementUser, error) {
	if input.ProjectID == 0 || isBlank(input.Name) {
		return nil, ErrUserFieldsRequired
	}

	if err := ensureProject(ctx, s.projectRepo, input.ProjectID); err != nil {
		return nil, err
	}

	pageIDs := uniqueUint64(input.PageAccess)
	functionalityIDs := uniqueUint64(input.FunctionalityAccess)
	if err := s.verifyAccess(ctx, pageIDs, functionalityIDs); err != nil {
		return nil, err
	}

	user := &models.RequirementUser{
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Description: optionalText(input.Description),
	}
	if input.Privileges != nil {
		user.Privileges = datatypes.JSONSlice[string](input.Privileges)
	}

	if err := s.userRepo.CreateWithAccess(ctx, user, pageIDs, functionalityIDs); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser updates the supplied fields of a user and replaces every supplied
// access list in the same transaction.
func (s *RequirementUserService) UpdateUser(ctx context.Context, id uint64, input UpdateUserInput) (*models.RequirementUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		if isBlank(*input.Name) {
			return nil, ErrUserNameEmpty
		}
		user.Name = *input.Name
	}
	if input.Description != nil {
		user.Description = optionalText(input.Description)
	}
	if input.Privileges != nil {
		user.Privileges = datatypes.JSONSlice[string](*input.Privileges)
	}

	var pageIDs, functionalityIDs *[]uint64
	if input.PageAccess != nil {
		ids := uniqueUint64(*input.PageAccess)
		pageIDs = &ids
	}
	if input.FunctionalityAccess != nil {
		ids := uniqueUint64(*input.FunctionalityAccess)
		functionalityIDs = &ids
	}

	if err := s.verifyAccess(ctx, deref(pageIDs), deref(functionalityIDs)); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateWithAccess(ctx, user, pageIDs, functionalityIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser deletes a user with its access rows
func (s *RequirementUserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// verifyAccess checks that every granted page and functionality exists. The ID
// lists must already be unique.
func (s *RequirementUserService) verifyAccess(ctx context.Context, pageIDs, functionalityIDs []uint64) error {
	if len(pageIDs) > 0 {
		count, err := s.pageRepo.CountExisting(ctx, pageIDs)
		if err != nil {
			return fmt.Errorf("failed to verify pages: %w", err)
		}
		if int(count) != len(pageIDs) {
			return ErrInvalidPageAccess
		}
	}

	if len(functionalityIDs) > 0 {
		count, err := s.functionalityRepo.CountExisting(ctx, functionalityIDs)
		if err != nil {
			return fmt.Errorf("failed to verify functionalities: %w", err)
		}
		if int(count) != len(functionalityIDs) {
			return ErrInvalidFunctionalityAccess
		}
	}

	return nil
}

func deref(ids *[]uint64) []uint64 {
	if ids == nil {
		return nil
	}
	return *ids
}

func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
