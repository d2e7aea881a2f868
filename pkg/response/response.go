// Package response implements the JSON envelope every endpoint replies with:
// a success flag, a human-readable message and an optional data payload.
// Failure conditions in the validation/not-found/collaborator classes are
// reported as success:false with HTTP 200; the status code does not carry
// the outcome.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

func OKWithData(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: false, Message: message})
}
