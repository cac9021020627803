package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/dto"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/services"
)

type PageHandler struct {
	pageService *services.PageService
}

func NewPageHandler(pageService *services.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// ListPages returns the pages of the project in the path
func (h *PageHandler) ListPages(c *gin.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return err
	}

	pages, err := h.pageService.ListPagesByProject(c.Request.Context(), projectID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, pages)
	return nil
}

// GetPage returns a page with its functionalities
func (h *PageHandler) GetPage(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page, err := h.pageService.GetPage(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.ToPageDetailDTO(*page))
	return nil
}

func (h *PageHandler) CreatePage(c *gin.Context) error {
	var req dto.CreatePageRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	page, err := h.pageService.CreatePage(c.Request.Context(), services.CreatePageInput{
		ProjectID:   req.ProjectID.Uint64(),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, page)
	return nil
}

func (h *PageHandler) UpdatePage(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePageRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	page, err := h.pageService.UpdatePage(c.Request.Context(), id, services.UpdatePageInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, page)
	return nil
}

func (h *PageHandler) DeletePage(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.pageService.DeletePage(c.Request.Context(), id); err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Page deleted successfully"})
	return nil
}
