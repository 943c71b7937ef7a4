package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error payload. Message is safe for clients;
// internal failure detail never travels in it.
type ErrorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error writes an error payload with the given status.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorBody{Message: message, Details: details})
}

// AbortError writes an error payload and aborts the handler chain.
// Intended for middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}

// Message writes a body containing only a message field.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
