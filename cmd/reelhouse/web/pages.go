// Package web serves the server-rendered pages: the video grid, the
// upload form and the watch page. Playback itself is the provider's
// pre-built player component; thumbnails come straight from the
// provider's public image service.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/models"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/service"
	"github.com/reelhouse/reelhouse/common/bootstrap"
	"github.com/reelhouse/reelhouse/common/clients"
)

//go:embed templates/*.html
var templateFS embed.FS

// thumbnailURLTemplate is a convention of the provider's image service,
// not an API call this service makes
const thumbnailURLTemplate = "https://image.mux.com/%s/thumbnail.jpg?width=640"

// PageHandler renders HTML pages over the same video service the JSON
// API uses
type PageHandler struct {
	components   *bootstrap.Components
	videoService *service.VideoService
	templates    *template.Template
}

// NewPageHandler creates a page handler with parsed templates
func NewPageHandler(components *bootstrap.Components, videoService *service.VideoService) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &PageHandler{
		components:   components,
		videoService: videoService,
		templates:    tmpl,
	}, nil
}

// gridVideo decorates a video with its thumbnail URL for the grid
type gridVideo struct {
	models.Video
	ThumbnailURL string
}

type indexPageData struct {
	Videos []gridVideo
	Search string
	Error  string
}

// Index renders the browse grid with an optional search box
// GET /
func (h *PageHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	search := c.QueryParam("search")

	data := indexPageData{Search: search}

	resp, err := h.videoService.ListVideos(ctx, service.ListVideosRequest{Search: search})
	if err != nil {
		h.components.Logger.Error("failed to render video grid", "error", err)
		data.Error = "Videos are unavailable right now, please try again later."
	} else {
		data.Videos = make([]gridVideo, 0, len(resp.Videos))
		for _, v := range resp.Videos {
			data.Videos = append(data.Videos, gridVideo{
				Video:        v,
				ThumbnailURL: fmt.Sprintf(thumbnailURLTemplate, v.PlaybackID),
			})
		}
	}

	return h.render(c, http.StatusOK, "index.html", data)
}

// UploadPage renders the multipart upload form
// GET /upload
func (h *PageHandler) UploadPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "upload.html", nil)
}

// Watch renders the player page for one playable video
// GET /watch/:id
func (h *PageHandler) Watch(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	video, err := h.videoService.GetVideo(ctx, id)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return h.render(c, http.StatusNotFound, "not_found.html", nil)
		}

		h.components.Logger.Error("failed to render watch page", "asset_id", id, "error", err)
		return h.render(c, http.StatusInternalServerError, "not_found.html", nil)
	}

	return h.render(c, http.StatusOK, "watch.html", video)
}

// render executes into a buffer first so a template error surfaces
// before any status or body is committed to the response
func (h *PageHandler) render(c echo.Context, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.components.Logger.Error("template execution failed", "template", name, "error", err)
		return err
	}

	return c.HTMLBlob(status, buf.Bytes())
}
