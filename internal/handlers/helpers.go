package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	apierrors "github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/errors"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/middleware"
)

// bindJSON decodes the request body into obj. An empty body decodes as {}.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apierrors.ErrInvalidInput
	}
	return nil
}

// pathID returns the path parameter parsed by middleware.ParseIDParam
func pathID(c *gin.Context, param string) (uint64, error) {
	id, ok := middleware.GetIDParam(c, param)
	if !ok {
		return 0, apierrors.Validation("Invalid ID")
	}
	return id, nil
}
