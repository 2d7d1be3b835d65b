package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every failure outcome.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the wire shape for update/delete acknowledgements.
type MessageBody struct {
	Message string `json:"message"`
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}
