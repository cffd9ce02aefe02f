package middleware

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/kordlan/harmonia_backend/pkg/ratelimit"
)

// SearchLimit gates the search endpoint with the per-client
// fixed-window limiter, keyed by the client address captured in the
// request metadata (source address when no metadata middleware ran).
// Rejections carry a Retry-After header and the remaining window in
// seconds.
func SearchLimit(limiter *ratelimit.Limiter) fiber.Handler {
	return func(c fiber.Ctx) error {
		key := c.IP()
		if meta, ok := RequestMetaFromFiber(c); ok {
			key = meta.ClientIP
		}

		res := limiter.Check(key)
		if !res.Limited {
			return c.Next()
		}

		retryAfter := int(math.Ceil(res.RemainingWindow.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Set("Retry-After", strconv.Itoa(retryAfter))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":      "too many search requests",
			"retryAfter": retryAfter,
		})
	}
}
