package dto

import "github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"

// MessageResponse is returned by successful deletes
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PageDetailDTO represents a page together with its functionalities
type PageDetailDTO struct {
	models.Page
	Functionalities []models.Functionality `json:"functionalities"`
}

// RequirementUserDetailDTO represents a requirement user with both access lists
type RequirementUserDetailDTO struct {
	models.RequirementUser
	PageAccess          []models.UserPageAccess          `json:"pageAccess"`
	FunctionalityAccess []models.UserFunctionalityAccess `json:"functionalityAccess"`
}

// Conversion functions

// ToPageDetailDTO converts a page loaded with its functionalities
func ToPageDetailDTO(page models.Page) PageDetailDTO {
	functionalities := page.Functionalities
	if functionalities == nil {
		functionalities = []models.Functionality{}
	}
	return PageDetailDTO{
		Page:            page,
		Functionalities: functionalities,
	}
}

// ToRequirementUserDetailDTO converts a user loaded with its access rows
func ToRequirementUserDetailDTO(user models.RequirementUser) RequirementUserDetailDTO {
	pageAccess := user.PageAccess
	if pageAccess == nil {
		pageAccess = []models.UserPageAccess{}
	}
	functionalityAccess := user.FunctionalityAccess
	if functionalityAccess == nil {
		functionalityAccess = []models.UserFunctionalityAccess{}
	}
	return RequirementUserDetailDTO{
		RequirementUser:     user,
		PageAccess:          pageAccess,
		FunctionalityAccess: functionalityAccess,
	}
}
