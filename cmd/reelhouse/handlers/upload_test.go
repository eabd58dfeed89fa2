package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/service"
	"github.com/reelhouse/reelhouse/common/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadHandler(provider *fakeProvider) *UploadHandler {
	components := testComponents()
	uploadService := service.NewUploadService(provider, components.Logger)
	return NewUploadHandler(components, uploadService)
}

func TestUploadVideo_Success(t *testing.T) {
	provider := &fakeProvider{}
	h := newUploadHandler(provider)

	req := newMultipartRequest("video", "demo.mp4", "raw video bytes", map[string]string{
		"title":       "Demo",
		"description": "A demo",
	})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.UploadVideo(c))
	assert.Equal(t, 200, rec.Code)

	var resp struct {
		UploadID string `json:"uploadId"`
		AssetID  string `json:"assetId"`
		Title    string `json:"title"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "up-1", resp.UploadID)
	assert.Equal(t, "asset-1", resp.AssetID)
	assert.Equal(t, "Demo", resp.Title)
	assert.Equal(t, "uploaded", resp.Status)
}

func TestUploadVideo_MissingFile(t *testing.T) {
	provider := &fakeProvider{}
	h := newUploadHandler(provider)

	req := newMultipartRequest("", "", "", map[string]string{"title": "Demo"})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.UploadVideo(c))
	assert.Equal(t, 400, rec.Code)

	// A client error must never reach the provider
	assert.Zero(t, provider.createUploadCalls)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No video file provided", resp["error"])
}

func TestUploadVideo_ProviderDown(t *testing.T) {
	provider := &fakeProvider{createUploadErr: clients.ErrProviderUnavailable}
	h := newUploadHandler(provider)

	req := newMultipartRequest("video", "demo.mp4", "x", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.UploadVideo(c))
	assert.Equal(t, 500, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to upload video", resp["error"])
}

func TestUploadVideo_TransferFails(t *testing.T) {
	provider := &fakeProvider{putObjectErr: assert.AnError}
	h := newUploadHandler(provider)

	req := newMultipartRequest("video", "demo.mp4", "x", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.UploadVideo(c))
	assert.Equal(t, 500, rec.Code)
}
