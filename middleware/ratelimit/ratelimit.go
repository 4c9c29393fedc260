// Package ratelimit provides a Redis-backed fixed-window rate limiter for
// the HTTP API.
package ratelimit

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Config controls the limiter window.
type Config struct {
	// Limit is the maximum number of requests per window per client IP.
	Limit int64
	// Window is the fixed window length.
	Window time.Duration
}

// DefaultConfig returns the default limiter configuration.
func DefaultConfig() Config {
	return Config{
		Limit:  100,
		Window: time.Minute,
	}
}

// New returns a fixed-window rate limiting middleware keyed by client IP.
// A nil client disables the limiter. Redis errors fail open: an
// unreachable Redis never takes the API down with it.
func New(client *redis.Client, config Config) fiber.Handler {
	if client == nil || config.Limit <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		window := time.Now().Unix() / int64(config.Window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), window)

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[ratelimit] Redis error, failing open: %v", err)
			return c.Next()
		}
		if count == 1 {
			client.Expire(ctx, key, config.Window)
		}

		if count > config.Limit {
			c.Set("Retry-After", fmt.Sprintf("%d", int(config.Window.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
