package serverutils

import (
	"fmt"
	"time"

	"notes-api/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimiter implements fixed-window limiting on top of Redis. Each window
// is one key (scope + client IP + window bucket) bumped with INCR; the first
// hit sets the expiry. If Redis is unreachable the limiter fails open.
type RateLimiter struct {
	rdb *redis.Client
	log logger.ILogger
}

func NewRateLimiter(rdb *redis.Client, log logger.ILogger) *RateLimiter {
	return &RateLimiter{rdb: rdb, log: log}
}

func (rl *RateLimiter) Limit(scope string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl.rdb == nil {
			return c.Next()
		}

		bucket := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, c.IP(), bucket)

		pipe := rl.rdb.TxPipeline()
		incr := pipe.Incr(c.Context(), key)
		pipe.Expire(c.Context(), key, window)
		if _, err := pipe.Exec(c.Context()); err != nil {
			rl.log.Warn("ratelimit", "Redis unavailable, allowing request", map[string]interface{}{
				"scope": scope,
				"error": err.Error(),
			})
			return c.Next()
		}

		if incr.Val() > int64(limit) {
			return RateLimitedError()
		}
		return c.Next()
	}
}
