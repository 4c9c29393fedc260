// Package latency provides a middleware that delays API responses by a
// fixed duration, simulating a remote backend for local development.
package latency

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// New returns a middleware that sleeps for delay before passing the
// request on. A non-positive delay disables the middleware. The sleep is
// cut short when the request context is cancelled.
func New(delay time.Duration) fiber.Handler {
	if delay <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-c.UserContext().Done():
			return c.UserContext().Err()
		case <-timer.C:
		}
		return c.Next()
	}
}
