package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/repository"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FunctionalityService handles functionality business logic
type FunctionalityService struct {
	functionalityRepo repository.FunctionalityRepository
	pageRepo          repository.PageRepository
	validator         *validation.Validator
}

// NewFunctionalityService creates a new FunctionalityService
func NewFunctionalityService(functionalityRepo repository.FunctionalityRepository, pageRepo repository.PageRepository, validator *validation.Validator) *FunctionalityService {
	return &FunctionalityService{
		functionalityRepo: functionalityRepo,
		pageRepo:          pageRepo,
		validator:         validator,
	}
}

// CreateFunctionalityInput represents input for creating a functionality
type CreateFunctionalityInput struct {
	PageID        uint64
	Name          string
	Description   *string
	Type          models.FunctionalityType
	Fields        datatypes.JSON
	DataToDisplay *string
}

// UpdateFunctionalityInput represents input for updating a functionality.
// A nil Fields leaves the descriptors unchanged, a JSON null clears them.
type UpdateFunctionalityInput struct {
	Name          *string
	Description   *string
	Type          *models.FunctionalityType
	Fields        datatypes.JSON
	DataToDisplay *string
}

// ListFunctionalitiesByPage returns the functionalities placed on a page
func (s *FunctionalityService) ListFunctionalitiesByPage(ctx context.Context, pageID uint64) ([]models.Functionality, error) {
	functionalities, err := s.functionalityRepo.ListByPage(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list functionalities: %w", err)
	}
	return functionalities, nil
}

// GetFunctionality returns a functionality by ID
func (s *FunctionalityService) GetFunctionality(ctx context.Context, id uint64) (*models.Functionality, error) {
	functionality, err := s.functionalityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFunctionalityNotFound
		}
		return nil, fmt.Errorf("failed to find functionality: %w", err)
	}
	return functionality, nil
}

// CreateFunctionality creates a functionality on an existing page
func (s *FunctionalityService) CreateFunctionality(ctx context.Context, input CreateFunctionalityInput) (*models.Functionality, error) {
	if input.PageID == 0 || isBlank(input.Name) || input.Type == "" {
		return nil, ErrFunctionalityFieldsRequired
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidFunctionalityType
	}
	if err := s.validateFields(input.Fields); err != nil {
		return nil, err
	}

	if _, err := s.pageRepo.FindByID(ctx, input.PageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentPageNotFound
		}
		return nil, fmt.Errorf("failed to find page: %w", err)
	}

	functionality := &models.Functionality{
		PageID:        input.PageID,
		Name:          input.Name,
		Description:   optionalText(input.Description),
		Type:          input.Type,
		Fields:        optionalJSON(input.Fields),
		DataToDisplay: optionalText(input.DataToDisplay),
	}

	if err := s.functionalityRepo.Create(ctx, functionality); err != nil {
		return nil, fmt.Errorf("failed to create functionality: %w", err)
	}

	return functionality, nil
}

// UpdateFunctionality updates the supplied fields of a functionality. A
// supplied type is checked against the supported kinds.
func (s *FunctionalityService) UpdateFunctionality(ctx context.Context, id uint64, input UpdateFunctionalityInput) (*models.Functionality, error) {
	functionality, err := s.GetFunctionality(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if isBlank(*input.Name) {
			return nil, ErrFunctionalityNameEmpty
		}
		functionality.Name = *input.Name
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, ErrInvalidFunctionalityType
		}
		functionality.Type = *input.Type
	}
	if input.Fields != nil {
		if err := s.validateFields(input.Fields); err != nil {
			return nil, err
		}
		functionality.Fields = optionalJSON(input.Fields)
	}
	if input.Description != nil {
		functionality.Description = optionalText(input.Description)
	}
	if input.DataToDisplay != nil {
		functionality.DataToDisplay = optionalText(input.DataToDisplay)
	}

	if err := s.functionalityRepo.Update(ctx, functionality); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFunctionalityNotFound
		}
		return nil, fmt.Errorf("failed to update functionality: %w", err)
	}

	return functionality, nil
}

// DeleteFunctionality deletes a functionality with its access rows
func (s *FunctionalityService) DeleteFunctionality(ctx context.Context, id uint64) error {
	if err := s.functionalityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFunctionalityNotFound
		}
		return fmt.Errorf("failed to delete functionality: %w", err)
	}
	return nil
}

func (s *FunctionalityService) validateFields(fields datatypes.JSON) error {
	if err := s.validator.Validate(validation.FunctionalityFields, fields); err != nil {
		if errors.Is(err, validation.ErrInvalidDocument) {
			return ErrInvalidFields
		}
		return fmt.Errorf("failed to validate fields: %w", err)
	}
	return nil
}
