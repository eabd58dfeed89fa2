package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// PlaybackID is a public playback grant on an asset.
type PlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

// Asset is the provider's record of a single uploaded video. All fields
// except Passthrough are provider-owned and read-only; Passthrough is
// stored and returned verbatim, which is where this service keeps its
// own metadata.
type Asset struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"`
	PlaybackIDs []PlaybackID `json:"playback_ids"`
	Duration    float64      `json:"duration"`
	AspectRatio string       `json:"aspect_ratio"`
	CreatedAt   string       `json:"created_at"`
	Passthrough string       `json:"passthrough"`
}

// Playable reports whether viewers may be given this asset: transcoding
// finished and at least one playback id was issued.
func (a *Asset) Playable() bool {
	return a.Status == "ready" && len(a.PlaybackIDs) > 0
}

// Upload is a provisioned direct upload: a short-lived target URL plus
// the ids of the upload session and the asset it will produce.
type Upload struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
	Status  string `json:"status"`
}

// MuxClient talks to the Mux Video REST API using basic auth.
// No retries: a failed call surfaces immediately to the caller.
type MuxClient struct {
	http        *HTTPClient
	baseURL     string
	tokenID     string
	tokenSecret string
	logger      Logger
}

// NewMuxClient creates a Mux API client. Credentials are injected
// explicitly at construction time, never read from the environment here.
func NewMuxClient(httpClient *HTTPClient, baseURL, tokenID, tokenSecret string, logger Logger) *MuxClient {
	return &MuxClient{
		http:        httpClient,
		baseURL:     baseURL,
		tokenID:     tokenID,
		tokenSecret: tokenSecret,
		logger:      logger,
	}
}

type createUploadRequest struct {
	NewAssetSettings newAssetSettings `json:"new_asset_settings"`
	CORSOrigin       string           `json:"cors_origin,omitempty"`
}

type newAssetSettings struct {
	PlaybackPolicy []string `json:"playback_policy"`
	Passthrough    string   `json:"passthrough,omitempty"`
}

// CreateUpload provisions a direct upload target with a public playback
// policy and the given passthrough string on the eventual asset.
func (c *MuxClient) CreateUpload(ctx context.Context, passthrough string) (*Upload, error) {
	body, err := json.Marshal(createUploadRequest{
		NewAssetSettings: newAssetSettings{
			PlaybackPolicy: []string{"public"},
			Passthrough:    passthrough,
		},
		CORSOrigin: "*",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal upload request: %w", err)
	}

	resp, err := c.http.DoRequest(ctx, http.MethodPost, c.baseURL+"/video/v1/uploads", bytes.NewReader(body), c.authHeader(true))
	if err != nil {
		c.logger.Error("create upload request failed", "error", err)
		return nil, ErrProviderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("create upload rejected", "status", resp.StatusCode)
		return nil, ErrProviderUnavailable
	}

	var envelope struct {
		Data Upload `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error("create upload response undecodable", "error", err)
		return nil, ErrProviderUnavailable
	}

	return &envelope.Data, nil
}

// GetAsset retrieves a single asset by id
func (c *MuxClient) GetAsset(ctx context.Context, id string) (*Asset, error) {
	resp, err := c.http.DoRequest(ctx, http.MethodGet, c.baseURL+"/video/v1/assets/"+id, nil, c.authHeader(false))
	if err != nil {
		c.logger.Error("get asset request failed", "asset_id", id, "error", err)
		return nil, ErrProviderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("get asset rejected", "asset_id", id, "status", resp.StatusCode)
		return nil, ErrProviderUnavailable
	}

	var envelope struct {
		Data Asset `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error("get asset response undecodable", "asset_id", id, "error", err)
		return nil, ErrProviderUnavailable
	}

	return &envelope.Data, nil
}

// ListAssets retrieves one page of assets using the provider's own
// pagination; this service keeps no offset state of its own.
func (c *MuxClient) ListAssets(ctx context.Context, page, limit int) ([]Asset, error) {
	url := c.baseURL + "/video/v1/assets?limit=" + strconv.Itoa(limit) + "&page=" + strconv.Itoa(page)

	resp, err := c.http.DoRequest(ctx, http.MethodGet, url, nil, c.authHeader(false))
	if err != nil {
		c.logger.Error("list assets request failed", "error", err)
		return nil, ErrProviderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("list assets rejected", "status", resp.StatusCode)
		return nil, ErrProviderUnavailable
	}

	var envelope struct {
		Data []Asset `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error("list assets response undecodable", "error", err)
		return nil, ErrProviderUnavailable
	}

	return envelope.Data, nil
}

// PutObject streams raw bytes to an upload target URL. The target is
// pre-signed by the provider, so no auth header is sent.
func (c *MuxClient) PutObject(ctx context.Context, url, contentType string, body io.Reader) error {
	header := http.Header{}
	header.Set("Content-Type", contentType)

	resp, err := c.http.DoRequest(ctx, http.MethodPut, url, body, header)
	if err != nil {
		c.logger.Error("upload transfer failed", "error", err)
		return fmt.Errorf("transfer to upload target: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("upload target rejected bytes", "status", resp.StatusCode)
		return fmt.Errorf("upload target returned status %d", resp.StatusCode)
	}

	return nil
}

func (c *MuxClient) authHeader(jsonBody bool) http.Header {
	header := http.Header{}
	header.Set("Authorization", "Basic "+basicAuth(c.tokenID, c.tokenSecret))
	if jsonBody {
		header.Set("Content-Type", "application/json")
	}
	return header
}
