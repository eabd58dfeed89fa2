package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/common/ratelimit"
)

// UploadRateLimit limits upload requests per client IP using the Redis
// sliding-window limiter. A nil limiter (no Redis configured) disables
// the check entirely; limiter errors fail open for availability.
func UploadRateLimit(limiter *ratelimit.RateLimiter, limit int64, windowSec int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			result, err := limiter.CheckUploadLimit(c.Request().Context(), c.RealIP(), limit, windowSec)
			if err != nil {
				// On error, allow request (fail open for availability)
				return next(c)
			}

			if !result.Allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error": "Too many uploads, please try again later",
					"details": map[string]interface{}{
						"limit":               result.Limit,
						"retry_after_seconds": result.RetryAfterSeconds,
					},
				})
			}

			return next(c)
		}
	}
}
