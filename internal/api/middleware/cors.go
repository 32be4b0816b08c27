package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins  []string
	AllowAllOrigins bool
}

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With"
	corsAllowMethods = "POST, OPTIONS, GET, PUT, DELETE"
)

// resolveOrigin decides what Access-Control-Allow-Origin to send for a
// request origin. The second return is false when the origin is rejected
// and no CORS headers should be written at all.
// A wildcard grant forbids credentials, so the third return carries the
// Access-Control-Allow-Credentials value to pair with the origin.
func resolveOrigin(origin string, config CORSConfig) (allowOrigin, allowCredentials string, ok bool) {
	if config.AllowAllOrigins {
		return "*", "false", true
	}
	if len(config.AllowedOrigins) > 0 && !IsOriginAllowed(origin, config) {
		return "", "", false
	}
	return origin, "true", true
}

// CORS returns a middleware that answers cross-origin requests per config.
// Preflight OPTIONS requests are terminated with 204.
func CORS(config CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowOrigin, allowCredentials, ok := resolveOrigin(origin, config)
		if !ok {
			c.Next()
			return
		}

		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", allowOrigin)
		header.Set("Access-Control-Allow-Credentials", allowCredentials)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// IsOriginAllowed reports whether an origin passes the configured allow list.
func IsOriginAllowed(origin string, config CORSConfig) bool {
	if config.AllowAllOrigins {
		return true
	}
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(origin, allowed) {
			return true
		}
	}
	return false
}
