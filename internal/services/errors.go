package services

import (
	"strings"

	apierrors "github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/errors"
	"gorm.io/datatypes"
)

var (
	ErrProjectNotFound       = apierrors.NotFound("Project")
	ErrProjectNameRequired   = apierrors.MissingField("Project name is required")
	ErrProjectNameEmpty      = apierrors.Validation("Project name cannot be empty")
	ErrParentProjectNotFound = apierrors.Validation("Project not found")

	ErrPageNotFound       = apierrors.NotFound("Page")
	ErrPageFieldsRequired = apierrors.MissingField("Project ID and name are required")
	ErrPageNameEmpty      = apierrors.Validation("Page name cannot be empty")
	ErrParentPageNotFound = apierrors.Validation("Page not found")

	ErrFunctionalityNotFound       = apierrors.NotFound("Functionality")
	ErrFunctionalityFieldsRequired = apierrors.MissingField("Page ID, name, and type are required")
	ErrFunctionalityNameEmpty      = apierrors.Validation("Functionality name cannot be empty")
	ErrInvalidFunctionalityType    = apierrors.Validation("Type must be button, form, or table")
	ErrInvalidFields               = apierrors.Validation("Fields must be a list")

	ErrWorkflowNotFound       = apierrors.NotFound("Workflow")
	ErrWorkflowFieldsRequired = apierrors.MissingField("Project ID and name are required")
	ErrWorkflowNameEmpty      = apierrors.Validation("Workflow name cannot be empty")

	ErrUserNotFound               = apierrors.NotFound("User")
	ErrUserFieldsRequired         = apierrors.MissingField("Project ID and name are required")
	ErrUserNameEmpty              = apierrors.Validation("User name cannot be empty")
	ErrInvalidPageAccess          = apierrors.Validation("One or more pages do not exist")
	ErrInvalidFunctionalityAccess = apierrors.Validation("One or more functionalities do not exist")
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// optionalText stores empty text as NULL
func optionalText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// optionalJSON stores an absent or null document as NULL
func optionalJSON(doc datatypes.JSON) datatypes.JSON {
	trimmed := strings.TrimSpace(string(doc))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return doc
}
