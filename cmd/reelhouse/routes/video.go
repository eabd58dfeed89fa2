package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/container"
)

// RegisterVideoRoutes registers the JSON video read and list routes
func RegisterVideoRoutes(e *echo.Echo, c *container.Container) {
	h := c.VideoHandler

	videos := e.Group("/videos")
	{
		videos.GET("", h.ListVideos)    // GET /videos?search=&limit=&page=
		videos.GET("/:id", h.GetVideo)  // GET /videos/{id}
	}
}
