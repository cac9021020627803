package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/dto"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/services"
)

type WorkflowHandler struct {
	workflowService *services.WorkflowService
}

func NewWorkflowHandler(workflowService *services.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

func (h *WorkflowHandler) ListWorkflows(c *gin.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return err
	}

	workflows, err := h.workflowService.ListWorkflowsByProject(c.Request.Context(), projectID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, workflows)
	return nil
}

func (h *WorkflowHandler) GetWorkflow(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	workflow, err := h.workflowService.GetWorkflow(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, workflow)
	return nil
}

func (h *WorkflowHandler) CreateWorkflow(c *gin.Context) error {
	var req dto.CreateWorkflowRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	workflow, err := h.workflowService.CreateWorkflow(c.Request.Context(), services.CreateWorkflowInput{
		ProjectID:     req.ProjectID.Uint64(),
		Name:          req.Name,
		Description:   req.Description,
		FlowchartData: req.FlowchartData,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, workflow)
	return nil
}

func (h *WorkflowHandler) UpdateWorkflow(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateWorkflowRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	workflow, err := h.workflowService.UpdateWorkflow(c.Request.Context(), id, services.UpdateWorkflowInput{
		Name:          req.Name,
		Description:   req.Description,
		FlowchartData: req.FlowchartData,
	})
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, workflow)
	return nil
}

func (h *WorkflowHandler) DeleteWorkflow(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.workflowService.DeleteWorkflow(c.Request.Context(), id); err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Workflow deleted successfully"})
	return nil
}
