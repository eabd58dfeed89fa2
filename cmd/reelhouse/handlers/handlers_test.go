package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/common/bootstrap"
	"github.com/reelhouse/reelhouse/common/clients"
	"github.com/reelhouse/reelhouse/common/config"
	"github.com/reelhouse/reelhouse/common/logger"
)

// fakeProvider implements the provider slices the services consume
type fakeProvider struct {
	assets map[string]*clients.Asset
	page   []clients.Asset

	getErr  error
	listErr error

	createUploadCalls int
	createUploadErr   error
	putObjectErr      error
}

func (f *fakeProvider) GetAsset(ctx context.Context, id string) (*clients.Asset, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	asset, ok := f.assets[id]
	if !ok {
		return nil, clients.ErrNotFound
	}
	return asset, nil
}

func (f *fakeProvider) ListAssets(ctx context.Context, page, limit int) ([]clients.Asset, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.page, nil
}

func (f *fakeProvider) CreateUpload(ctx context.Context, passthroughStr string) (*clients.Upload, error) {
	f.createUploadCalls++
	if f.createUploadErr != nil {
		return nil, f.createUploadErr
	}
	return &clients.Upload{ID: "up-1", URL: "https://storage.example.com/up-1", AssetID: "asset-1", Status: "waiting"}, nil
}

func (f *fakeProvider) PutObject(ctx context.Context, url, contentType string, body io.Reader) error {
	if f.putObjectErr != nil {
		return f.putObjectErr
	}
	io.Copy(io.Discard, body)
	return nil
}

func testComponents() *bootstrap.Components {
	cfg, _ := config.Load("reelhouse-test")
	return &bootstrap.Components{
		Config: cfg,
		Logger: logger.New("error", "text"),
	}
}

func readyAsset(id, title, description string) clients.Asset {
	return clients.Asset{
		ID:          id,
		Status:      "ready",
		PlaybackIDs: []clients.PlaybackID{{ID: "pb-" + id, Policy: "public"}},
		Duration:    30,
		AspectRatio: "16:9",
		CreatedAt:   "1712000000",
		Passthrough: `{"title":"` + title + `","description":"` + description + `"}`,
	}
}

// newMultipartRequest builds a multipart request; fileField may be empty
// to omit the video part entirely
func newMultipartRequest(fileField, filename, content string, fields map[string]string) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, filename)
		io.WriteString(part, content)
	}
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}
