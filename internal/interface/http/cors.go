package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsMethods = "GET, POST, OPTIONS"
	corsHeaders = "Content-Type"
	corsMaxAge  = "600"
)

// corsMiddleware answers preflights and sets CORS headers. An empty list or a
// "*" entry allows any origin; otherwise only listed origins are echoed back.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	policy := newOriginPolicy(allowed)
	return func(c *gin.Context) {
		headers := c.Writer.Header()
		if origin, ok := policy.resolve(c.GetHeader("Origin")); ok {
			headers.Set("Access-Control-Allow-Origin", origin)
			headers.Set("Access-Control-Allow-Methods", corsMethods)
			headers.Set("Access-Control-Allow-Headers", corsHeaders)
		}
		if !policy.any {
			headers.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			headers.Set("Access-Control-Max-Age", corsMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type originPolicy struct {
	any     bool
	origins map[string]struct{}
}

func newOriginPolicy(allowed []string) originPolicy {
	policy := originPolicy{origins: make(map[string]struct{}, len(allowed))}
	for _, origin := range allowed {
		origin = strings.ToLower(strings.TrimSpace(origin))
		if origin == "*" {
			policy.any = true
		}
		if origin != "" {
			policy.origins[origin] = struct{}{}
		}
	}
	if len(policy.origins) == 0 {
		policy.any = true
	}
	return policy
}

func (p originPolicy) resolve(requestOrigin string) (string, bool) {
	if p.any {
		return "*", true
	}
	if requestOrigin == "" {
		return "", false
	}
	if _, ok := p.origins[strings.ToLower(requestOrigin)]; ok {
		return requestOrigin, true
	}
	return "", false
}
