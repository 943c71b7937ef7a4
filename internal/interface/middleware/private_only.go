package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-backend/pkg/response"
)

// PrivateOnly rejects requests that do not originate from a private or
// loopback address. Used for operator-facing endpoints like /debug/vars.
func PrivateOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ipFromCtx(c)
		parsed := net.ParseIP(ip)
		if parsed == nil || !(parsed.IsLoopback() || parsed.IsPrivate()) {
			response.AbortError(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}
