package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// The wire contract is deliberately flat: payloads are returned as-is and
// every failure body is {"message": "..."} with the appropriate status.

// JSON writes a payload verbatim
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes {"message": ...} with a success status
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error writes {"message": ...} with a 4xx status
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ServerError logs the cause server-side and returns a generic body.
// Internal details must never reach the client.
func ServerError(c *gin.Context, err error) {
	log.Error().
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("Unhandled server error")

	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
