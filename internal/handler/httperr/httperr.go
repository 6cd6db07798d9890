package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns:
// {"success": true, "data": ..., "message": ...} on success,
// {"success": false, "message": ...} on failure.
type Response struct {
	Success bool   `json:"success"`
	Status  int    `json:"-"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func OKWithMessage(c *gin.Context, status int, data any, msg string) {
	c.JSON(status, Response{Success: true, Data: data, Message: msg})
}

// AbortWithError responds with the failure envelope and records the original
// error on the context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Success: false, Status: status, Message: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
