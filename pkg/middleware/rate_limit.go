package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"corkboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// Logger receives a warning when the counter store is unreachable. May be nil.
	Logger *logger.Logger
}

// RateLimitMiddleware counts requests per route and client IP in fixed
// windows aligned to Window. Requests pass through when Redis is unavailable.
func RateLimitMiddleware(redisClient redis.Cmdable, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		bucket := now.UnixNano() / int64(cfg.Window)
		key := fmt.Sprintf("rate_limit:%s:%s:%d", c.FullPath(), c.ClientIP(), bucket)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Rate limiter unavailable, allowing %s %s: %v", c.Request.Method, c.FullPath(), err)
			}
			c.Next()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, cfg.Window)
		}

		remaining := int64(cfg.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Limit) {
			windowEnd := time.Unix(0, (bucket+1)*int64(cfg.Window))
			retryAfter := int(math.Ceil(windowEnd.Sub(now).Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
