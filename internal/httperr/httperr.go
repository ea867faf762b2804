package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func TooManyRequests(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Business writes a BusinessError with the status and message registered for its code.
func Business(c *gin.Context, be BusinessError) {
	status, message := Describe(be.Code)
	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: message,
		Detail:  be.Detail,
	})
}

// Code writes the registered response for a bare business code.
func Code(c *gin.Context, code string) {
	Business(c, BusinessError{Code: code})
}
