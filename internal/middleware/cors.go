package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware answers browsers only for configured origins. An exact
// match is echoed with credentials allowed; a "*" entry admits any origin
// without credentials. Other origins get no CORS headers at all.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		h := c.Writer.Header()

		if exact, ok := matchOrigin(allowed, origin); ok {
			h.Add("Vary", "Origin")
			if exact {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			} else {
				h.Set("Access-Control-Allow-Origin", "*")
			}
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+HeaderRequestID)
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Expose-Headers", HeaderRequestID)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// matchOrigin reports whether origin is allowed and whether it matched by
// name rather than through the wildcard.
func matchOrigin(allowed []string, origin string) (exact, ok bool) {
	if origin == "" {
		return false, false
	}
	wildcard := false
	for _, a := range allowed {
		if a == origin {
			return true, true
		}
		if a == "*" {
			wildcard = true
		}
	}
	return false, wildcard
}
