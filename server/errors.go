package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmeilick/juration/response"
)

// ErrorHandler is a helper function to return standardized error responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	c.JSON(statusCode, response.NewError(c.GetString(requestIDKey), message))
}
