package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/dto"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}
