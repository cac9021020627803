package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/errors"
)

const contextKeyIDParamPrefix = "id_param:"

// ParseIDParam parses the numeric path parameter param and stores it in the
// context. A value that is not an unsigned integer is rejected with
// 400 "Invalid <label> ID".
func ParseIDParam(param, label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, fmt.Sprintf("Invalid %s ID", label))
			c.Abort()
			return
		}

		c.Set(contextKeyIDParamPrefix+param, id)
		c.Next()
	}
}

// GetIDParam retrieves an ID stored by ParseIDParam
func GetIDParam(c *gin.Context, param string) (uint64, bool) {
	value, exists := c.Get(contextKeyIDParamPrefix + param)
	if !exists {
		return 0, false
	}

	id, ok := value.(uint64)
	return id, ok
}
