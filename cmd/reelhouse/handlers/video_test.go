package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/service"
	"github.com/reelhouse/reelhouse/common/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideoHandler(provider *fakeProvider) *VideoHandler {
	components := testComponents()
	videoService := service.NewVideoService(provider, components.Logger)
	return NewVideoHandler(components, videoService)
}

func TestGetVideo_OK(t *testing.T) {
	asset := readyAsset("asset-1", "Beach day", "Waves")
	provider := &fakeProvider{assets: map[string]*clients.Asset{"asset-1": &asset}}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos/asset-1", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("asset-1")

	require.NoError(t, h.GetVideo(c))
	assert.Equal(t, 200, rec.Code)

	var resp struct {
		Video struct {
			ID         string `json:"id"`
			PlaybackID string `json:"playbackId"`
			Title      string `json:"title"`
		} `json:"video"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "asset-1", resp.Video.ID)
	assert.Equal(t, "pb-asset-1", resp.Video.PlaybackID)
	assert.Equal(t, "Beach day", resp.Video.Title)
}

func TestGetVideo_NotReady(t *testing.T) {
	asset := clients.Asset{ID: "asset-1", Status: "preparing"}
	provider := &fakeProvider{assets: map[string]*clients.Asset{"asset-1": &asset}}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos/asset-1", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("asset-1")

	require.NoError(t, h.GetVideo(c))
	// Processing, errored and truly absent all collapse to 404
	assert.Equal(t, 404, rec.Code)
}

func TestGetVideo_Absent(t *testing.T) {
	provider := &fakeProvider{assets: map[string]*clients.Asset{}}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos/nope", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.GetVideo(c))
	assert.Equal(t, 404, rec.Code)
}

func TestGetVideo_ProviderDown(t *testing.T) {
	provider := &fakeProvider{getErr: clients.ErrProviderUnavailable}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos/asset-1", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("asset-1")

	require.NoError(t, h.GetVideo(c))
	assert.Equal(t, 500, rec.Code)
}

func TestListVideos_PaginationEcho(t *testing.T) {
	provider := &fakeProvider{page: []clients.Asset{readyAsset("a1", "Only one", "")}}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos?limit=5&page=2", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.ListVideos(c))
	assert.Equal(t, 200, rec.Code)

	var resp struct {
		Videos     []json.RawMessage `json:"videos"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// page and limit echo the request regardless of how many matched
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 5, resp.Pagination.Limit)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestListVideos_BadParamsFallBackToDefaults(t *testing.T) {
	provider := &fakeProvider{}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos?limit=abc&page=-3", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.ListVideos(c))

	var resp struct {
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.DefaultPage, resp.Pagination.Page)
	assert.Equal(t, service.DefaultLimit, resp.Pagination.Limit)
}

func TestListVideos_Search(t *testing.T) {
	provider := &fakeProvider{page: []clients.Asset{
		readyAsset("a1", "Cats at play", ""),
		readyAsset("a2", "Dogs", "no cats here"),
		readyAsset("a3", "Birds", ""),
	}}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos?search=cat", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.ListVideos(c))

	var resp struct {
		Videos []struct {
			ID string `json:"id"`
		} `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Videos, 2)
	assert.Equal(t, "a1", resp.Videos[0].ID)
	assert.Equal(t, "a2", resp.Videos[1].ID)
}

func TestListVideos_ProviderDown(t *testing.T) {
	provider := &fakeProvider{listErr: clients.ErrProviderUnavailable}
	h := newVideoHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.ListVideos(c))
	assert.Equal(t, 500, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to fetch videos", resp["error"])
}
