// internal/ui/rest/handlers/fallback.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is the body of routing errors, in the same "detail" shape
// as ValidationError.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// NotFound answers requests that match no route.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorDetail{Detail: "Not Found"})
	}
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorDetail{Detail: "Method Not Allowed"})
	}
}
