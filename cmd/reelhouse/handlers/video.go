package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/service"
	"github.com/reelhouse/reelhouse/common/bootstrap"
	"github.com/reelhouse/reelhouse/common/clients"
)

// VideoHandler handles video read and list requests
type VideoHandler struct {
	components   *bootstrap.Components
	videoService *service.VideoService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(components *bootstrap.Components, videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{
		components:   components,
		videoService: videoService,
	}
}

// GetVideo retrieves one playable video by asset id
// GET /videos/:id
func (h *VideoHandler) GetVideo(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	video, err := h.videoService.GetVideo(ctx, id)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error": "Video not found or not ready",
			})
		}

		h.components.Logger.Error("failed to fetch video", "asset_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to fetch video",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"video": video,
	})
}

// ListVideos retrieves one filtered page of playable videos.
// The reported total is the pre-filter fetched count for the page, not a
// cross-page total.
// GET /videos?search=&limit=&page=
func (h *VideoHandler) ListVideos(c echo.Context) error {
	ctx := c.Request().Context()

	req := service.ListVideosRequest{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", service.DefaultPage),
		Limit:  queryInt(c, "limit", service.DefaultLimit),
	}

	resp, err := h.videoService.ListVideos(ctx, req)
	if err != nil {
		h.components.Logger.Error("failed to list videos", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to fetch videos",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"videos": resp.Videos,
		"pagination": map[string]interface{}{
			"page":  resp.Page,
			"limit": resp.Limit,
			"total": resp.Total,
		},
	})
}

// queryInt parses an integer query parameter, falling back to a default
// on absence or garbage
func queryInt(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
