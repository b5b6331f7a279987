package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"newsreader/internal/logger"
)

// requestLogger logs every request once it has been served.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		log.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(startTime).Milliseconds(),
		)

		if len(c.Errors) > 0 {
			log.Error("request errors", "errors", c.Errors.String())
		}
	}
}
