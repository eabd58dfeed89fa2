package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/container"
)

// RegisterPageRoutes registers the server-rendered HTML pages
func RegisterPageRoutes(e *echo.Echo, c *container.Container) {
	h := c.PageHandler

	e.GET("/", h.Index)            // browse grid with search
	e.GET("/upload", h.UploadPage) // multipart upload form
	e.GET("/watch/:id", h.Watch)   // player page
}
