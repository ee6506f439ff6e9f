package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findata/internal/domain/dto"
)

// ErrorHandler renders errors attached with c.Error when the handler wrote no body.
//
// An attached dto.ErrorResponse is rendered as is; any other error becomes a 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	if resp, ok := last.(dto.ErrorResponse); ok {
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.JSON(status, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(last.Error(), nil))
}

// AbortWithError stops the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
