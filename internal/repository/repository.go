package repository

import (
	"context"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uint64) (*models.Project, error)

	// List retrieves every project
	List(ctx context.Context) ([]models.Project, error)

	// Update updates a project
	Update(ctx context.Context, project *models.Project) error

	// Delete deletes a project with its users, pages, functionalities,
	// workflows and access rows. Returns gorm.ErrRecordNotFound if the
	// project does not exist.
	Delete(ctx context.Context, id uint64) error
}

// PageRepository defines the interface for page data access
type PageRepository interface {
	// Create creates a new page
	Create(ctx context.Context, page *models.Page) error

	// FindByID finds a page by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Page, error)

	// ListByProject lists the pages of a project
	ListByProject(ctx context.Context, projectID uint64) ([]models.Page, error)

	// Update updates a page
	Update(ctx context.Context, page *models.Page) error

	// Delete deletes a page with its functionalities and access rows
	Delete(ctx context.Context, id uint64) error

	// CountExisting counts how many of the given page IDs exist
	CountExisting(ctx context.Context, pageIDs []uint64) (int64, error)
}

// FunctionalityRepository defines the interface for functionality data access
type FunctionalityRepository interface {
	// Create creates a new functionality
	Create(ctx context.Context, functionality *models.Functionality) error

	// FindByID finds a functionality by ID
	FindByID(ctx context.Context, id uint64) (*models.Functionality, error)

	// ListByPage lists the functionalities of a page
	ListByPage(ctx context.Context, pageID uint64) ([]models.Functionality, error)

	// Update updates a functionality
	Update(ctx context.Context, functionality *models.Functionality) error

	// Delete deletes a functionality with its access rows
	Delete(ctx context.Context, id uint64) error

	// CountExisting counts how many of the given functionality IDs exist
	CountExisting(ctx context.Context, functionalityIDs []uint64) (int64, error)
}

// WorkflowRepository defines the interface for workflow data access
type WorkflowRepository interface {
	Create(ctx context.Context, workflow *models.Workflow) error
	FindByID(ctx context.Context, id uint64) (*models.Workflow, error)
	ListByProject(ctx context.Context, projectID uint64) ([]models.Workflow, error)
	Update(ctx context.Context, workflow *models.Workflow) error
	Delete(ctx context.Context, id uint64) error
}

// RequirementUserRepository defines the interface for requirement user data access
type RequirementUserRepository interface {
	// CreateWithAccess creates a user together with its page and functionality
	// access rows within a single transaction.
	CreateWithAccess(ctx context.Context, user *models.RequirementUser, pageIDs, functionalityIDs []uint64) error

	// FindByID finds a user by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.RequirementUser, error)

	// ListByProject lists the requirement users of a project
	ListByProject(ctx context.Context, projectID uint64) ([]models.RequirementUser, error)

	// UpdateWithAccess saves the user and, for every non-nil list, replaces
	// the matching access rows with the list. All within one transaction.
	UpdateWithAccess(ctx context.Context, user *models.RequirementUser, pageIDs, functionalityIDs *[]uint64) error

	// Delete deletes a user with its access rows
	Delete(ctx context.Context, id uint64) error
}
