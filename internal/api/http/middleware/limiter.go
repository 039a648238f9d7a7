package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

// NewLimiter rate-limits per client IP. The backend serves a single
// desktop shell, so in-memory storage is enough.
func NewLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		// sliding window
		Max:               20,
		Expiration:        30 * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
