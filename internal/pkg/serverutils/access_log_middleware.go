package serverutils

import (
	"time"

	"notes-api/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AccessLogMiddleware writes one structured line per request.
func AccessLogMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestId := uuid.NewString()
		c.Locals("request_id", requestId)

		err := c.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"request_id":  requestId,
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.IP(),
		})
		return err
	}
}
