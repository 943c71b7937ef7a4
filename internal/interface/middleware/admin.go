package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-backend/pkg/response"
)

// AdminAuth guards destructive endpoints with a shared admin token carried
// as a bearer credential. An empty configured token disables the endpoint
// entirely rather than leaving it open. Comparison is constant time.
func AdminAuth(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			response.AbortError(c, http.StatusServiceUnavailable, "admin endpoints disabled")
			return
		}
		got := BearerToken(c)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(adminToken)) != 1 {
			response.AbortError(c, http.StatusUnauthorized, "invalid admin token")
			return
		}
		c.Next()
	}
}
