package dto

import (
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/datatypes"
)

// Update requests use pointers so that omitted keys leave the stored value
// unchanged. The JSON documents (fields, flowchartData) are nil when omitted
// and "null" when explicitly cleared.

// CreateProjectRequest represents the body of POST /api/projects
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateProjectRequest represents the body of PUT /api/projects/:id
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreatePageRequest represents the body of POST /api/pages
type CreatePageRequest struct {
	ProjectID   FlexID  `json:"projectId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdatePageRequest represents the body of PUT /api/pages/:id
type UpdatePageRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateFunctionalityRequest represents the body of POST /api/functionalities
type CreateFunctionalityRequest struct {
	PageID        FlexID                   `json:"pageId"`
	Name          string                   `json:"name"`
	Description   *string                  `json:"description"`
	Type          models.FunctionalityType `json:"type"`
	Fields        datatypes.JSON           `json:"fields"`
	DataToDisplay *string                  `json:"dataToDisplay"`
}

// UpdateFunctionalityRequest represents the body of PUT /api/functionalities/:id
type UpdateFunctionalityRequest struct {
	Name          *string                   `json:"name"`
	Description   *string                   `json:"description"`
	Type          *models.FunctionalityType `json:"type"`
	Fields        datatypes.JSON            `json:"fields"`
	DataToDisplay *string                   `json:"dataToDisplay"`
}

// CreateWorkflowRequest represents the body of POST /api/workflows
type CreateWorkflowRequest struct {
	ProjectID     FlexID         `json:"projectId"`
	Name          string         `json:"name"`
	Description   *string        `json:"description"`
	FlowchartData datatypes.JSON `json:"flowchartData"`
}

// UpdateWorkflowRequest represents the body of PUT /api/workflows/:id
type UpdateWorkflowRequest struct {
	Name          *string        `json:"name"`
	Description   *string        `json:"description"`
	FlowchartData datatypes.JSON `json:"flowchartData"`
}

// CreateUserRequest represents the body of POST /api/users
type CreateUserRequest struct {
	ProjectID           FlexID   `json:"projectId"`
	Name                string   `json:"name"`
	Description         *string  `json:"description"`
	Privileges          []string `json:"privileges"`
	PageAccess          []FlexID `json:"pageAccess"`
	FunctionalityAccess []FlexID `json:"functionalityAccess"`
}

// UpdateUserRequest represents the body of PUT /api/users/:id. A present
// access list, even an empty one, replaces the stored list.
type UpdateUserRequest struct {
	Name                *string   `json:"name"`
	Description         *string   `json:"description"`
	Privileges          *[]string `json:"privileges"`
	PageAccess          *[]FlexID `json:"pageAccess"`
	FunctionalityAccess *[]FlexID `json:"functionalityAccess"`
}
