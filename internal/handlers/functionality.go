package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/dto"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/services"
)

type FunctionalityHandler struct {
	functionalityService *services.FunctionalityService
}

func NewFunctionalityHandler(functionalityService *services.FunctionalityService) *FunctionalityHandler {
	return &FunctionalityHandler{functionalityService: functionalityService}
}

// ListFunctionalities returns the functionalities of the page in the path
func (h *FunctionalityHandler) ListFunctionalities(c *gin.Context) error {
	pageID, err := pathID(c, "pageId")
	if err != nil {
		return err
	}

	functionalities, err := h.functionalityService.ListFunctionalitiesByPage(c.Request.Context(), pageID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, functionalities)
	return nil
}

func (h *FunctionalityHandler) GetFunctionality(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	functionality, err := h.functionalityService.GetFunctionality(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, functionality)
	return nil
}

func (h *FunctionalityHandler) CreateFunctionality(c *gin.Context) error {
	var req dto.CreateFunctionalityRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	functionality, err := h.functionalityService.CreateFunctionality(c.Request.Context(), services.CreateFunctionalityInput{
		PageID:        req.PageID.Uint64(),
		Name:          req.Name,
		Description:   req.Description,
		Type:          req.Type,
		Fields:        req.Fields,
		DataToDisplay: req.DataToDisplay,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, functionality)
	return nil
}

func (h *FunctionalityHandler) UpdateFunctionality(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateFunctionalityRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	functionality, err := h.functionalityService.UpdateFunctionality(c.Request.Context(), id, services.UpdateFunctionalityInput{
		Name:          req.Name,
		Description:   req.Description,
		Type:          req.Type,
		Fields:        req.Fields,
		DataToDisplay: req.DataToDisplay,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, functionality)
	return nil
}

func (h *FunctionalityHandler) DeleteFunctionality(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.functionalityService.DeleteFunctionality(c.Request.Context(), id); err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Functionality deleted successfully"})
	return nil
}
