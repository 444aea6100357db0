package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ctxUserID    = "user_id"
	ctxUserIDStr = "user_id_str"
	ctxEmail     = "user_email"
	ctxRole      = "user_role"

	anonymousWeaver = "anonymous"
)

// weaver is the caller identity a gateway forwards in X-User-* headers
type weaver struct {
	id    string
	email string
	role  string
}

func weaverFromHeaders(c *gin.Context) weaver {
	return weaver{
		id:    c.GetHeader("X-User-ID"),
		email: c.GetHeader("X-User-Email"),
		role:  c.GetHeader("X-User-Role"),
	}
}

// attach stores the identity on the request. Non-numeric gateway ids only
// get the string key.
func (w weaver) attach(c *gin.Context) {
	if id, err := strconv.ParseUint(w.id, 10, 64); err == nil {
		c.Set(ctxUserID, uint(id))
	}
	c.Set(ctxUserIDStr, w.id)
	c.Set(ctxEmail, w.email)
	c.Set(ctxRole, w.role)
}

// GatewayAuth requires the identity headers an upstream gateway adds after
// validating the caller. Only safe when the loom is not reachable directly.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := weaverFromHeaders(c)
		if w.id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Missing X-User-ID header from gateway",
			})
			return
		}
		c.Set(ctxUserID, uint(0))
		w.attach(c)
		c.Next()
	}
}

// OptionalGatewayAuth records the gateway identity when present and lets
// anonymous requests through untouched
func OptionalGatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if w := weaverFromHeaders(c); w.id != "" {
			w.attach(c)
		}
		c.Next()
	}
}

// GetUserIDFromGateway returns the caller id set by one of the auth middlewares
func GetUserIDFromGateway(c *gin.Context) (string, bool) {
	id := c.GetString(ctxUserIDStr)
	return id, id != ""
}

// Auth picks the middleware for the configured AUTH_MODE
func Auth(gatewayMode bool) gin.HandlerFunc {
	if gatewayMode {
		return GatewayAuth()
	}
	return NoAuth()
}
