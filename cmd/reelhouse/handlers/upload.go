package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/service"
	"github.com/reelhouse/reelhouse/common/bootstrap"
)

// UploadHandler handles video upload requests
type UploadHandler struct {
	components    *bootstrap.Components
	uploadService *service.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(components *bootstrap.Components, uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		components:    components,
		uploadService: uploadService,
	}
}

// UploadVideo receives a multipart video submission and forwards it to
// the provider.
// POST /upload
func (h *UploadHandler) UploadVideo(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("video")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "No video file provided",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.components.Logger.Error("failed to open multipart file", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to upload video",
		})
	}
	defer src.Close()

	resp, err := h.uploadService.Upload(ctx, &service.CreateUploadRequest{
		File:        src,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	})
	if err != nil {
		h.components.Logger.Error("upload failed",
			"filename", fileHeader.Filename,
			"error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to upload video",
		})
	}

	return c.JSON(http.StatusOK, resp)
}
