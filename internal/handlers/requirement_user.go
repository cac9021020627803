package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/dto"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/services"
)

type RequirementUserHandler struct {
	userService *services.RequirementUserService
}

func NewRequirementUserHandler(userService *services.RequirementUserService) *RequirementUserHandler {
	return &RequirementUserHandler{userService: userService}
}

// ListUsers returns the requirement users of the project in the path
func (h *RequirementUserHandler) ListUsers(c *gin.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return err
	}

	users, err := h.userService.ListUsersByProject(c.Request.Context(), projectID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, users)
	return nil
}

// GetUser returns a user with its pageAccess and functionalityAccess rows
func (h *RequirementUserHandler) GetUser(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.ToRequirementUserDetailDTO(*user))
	return nil
}

// CreateUser creates a user with its initial access lists. Only the user row
// is returned.
func (h *RequirementUserHandler) CreateUser(c *gin.Context) error {
	var req dto.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		ProjectID:           req.ProjectID.Uint64(),
		Name:                req.Name,
		Description:         req.Description,
		Privileges:          req.Privileges,
		PageAccess:          dto.IDs(req.PageAccess),
		FunctionalityAccess: dto.IDs(req.FunctionalityAccess),
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, user)
	return nil
}

// UpdateUser updates a user. Access lists present in the body replace the
// stored ones.
func (h *RequirementUserHandler) UpdateUser(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Name:                req.Name,
		Description:         req.Description,
		Privileges:          req.Privileges,
		PageAccess:          dto.OptionalIDs(req.PageAccess),
		FunctionalityAccess: dto.OptionalIDs(req.FunctionalityAccess),
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, user)
	return nil
}

func (h *RequirementUserHandler) DeleteUser(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
	return nil
}
