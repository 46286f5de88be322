package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth guards dataset mutation routes with a shared token sent in
// X-Admin-Token. With an empty token every request gets 403, so the routes
// stay closed until ADMIN_TOKEN is configured. A missing or wrong token
// gets 401.
func AdminAuth(token string) gin.HandlerFunc {
	want := []byte(token)
	return func(c *gin.Context) {
		if len(want) == 0 {
			deny(c, http.StatusForbidden, "forbidden", "admin endpoints are disabled")
			return
		}
		got := []byte(c.GetHeader(adminTokenHeader))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			deny(c, http.StatusUnauthorized, "unauthorized", "missing or invalid admin token")
			return
		}
		c.Next()
	}
}

func deny(c *gin.Context, status int, code, msg string) {
	LoggerFrom(c).Warn().Int("status", status).Str("code", code).Msg("admin request denied")
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": RequestIDFrom(c),
		"code":       code,
		"message":    msg,
	})
}
