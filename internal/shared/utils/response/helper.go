package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Item writes a single resource wrapped in a data envelope.
func Item(c *gin.Context, code int, data interface{}) {
	c.JSON(code, ItemResponse{Data: data})
}

// List writes a page of resources with pagination metadata.
func List(c *gin.Context, data interface{}, meta Meta) {
	c.JSON(http.StatusOK, ListResponse{Data: data, Meta: meta})
}

// Error writes an error body with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// ValidationFailed writes a 422 with field-level errors.
func ValidationFailed(c *gin.Context, errors map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: "The given data was invalid.",
		Errors:  errors,
	})
}

// Message writes a plain message body.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
