package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/indiepages/indiepages/engine/infra/monitoring"
	"github.com/indiepages/indiepages/engine/redirect"
	"github.com/indiepages/indiepages/pkg/logger"
)

// LoggerMiddleware logs HTTP request details and attaches the logger to the
// request context for downstream handlers.
func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		c.Request = c.Request.WithContext(logger.ContextWithLogger(c.Request.Context(), log))
		c.Next()
		if raw != "" {
			path = path + "?" + raw
		}
		log.Info("Request completed",
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"status_code", c.Writer.Status(),
			"path", path,
		)
	}
}

// CORSMiddleware enables CORS for the configured origins.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// RedirectMiddleware consults the legacy-URL rule engine before routing.
// When a rule matches it writes exactly one permanent redirect and halts the
// chain; otherwise the request passes through untouched.
func RedirectMiddleware(engine *redirect.Engine, metrics *monitoring.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := engine.Decide(c.Request.Method, c.Request.URL.Path)
		if !decision.Redirect {
			c.Next()
			return
		}
		if metrics != nil {
			metrics.RecordRedirect(decision.Rule)
		}
		c.Redirect(decision.Status, decision.Location)
		c.Abort()
	}
}
