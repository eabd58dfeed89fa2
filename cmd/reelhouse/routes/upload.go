package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/container"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/middleware"
)

// RegisterUploadRoutes registers the upload route with its rate limit
func RegisterUploadRoutes(e *echo.Echo, c *container.Container) {
	cfg := c.Components.Config.RateLimit

	var limitMW echo.MiddlewareFunc
	if cfg.Enabled {
		limitMW = middleware.UploadRateLimit(c.RateLimiter, cfg.UploadLimit, cfg.WindowSeconds)
	} else {
		limitMW = middleware.UploadRateLimit(nil, 0, 0)
	}

	e.POST("/upload", c.UploadHandler.UploadVideo, limitMW) // POST /upload
}
