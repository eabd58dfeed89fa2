package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/reelhouse/reelhouse/common/clients"
	"github.com/reelhouse/reelhouse/common/logger"
	"github.com/reelhouse/reelhouse/common/passthrough"
)

// DefaultContentType is assumed when the client does not declare one
const DefaultContentType = "video/mp4"

// UploadTarget is the slice of the provider client the upload service needs
type UploadTarget interface {
	CreateUpload(ctx context.Context, passthroughStr string) (*clients.Upload, error)
	PutObject(ctx context.Context, url, contentType string, body io.Reader) error
}

// UploadService provisions an upload target at the provider and streams
// the submitted file to it. Two sequential provider calls, the second
// only after the first succeeds; no retries, no cleanup of abandoned
// uploads (the provider expires those itself).
type UploadService struct {
	provider UploadTarget
	log      *logger.Logger
	now      func() time.Time
}

// NewUploadService creates a new upload service
func NewUploadService(provider UploadTarget, log *logger.Logger) *UploadService {
	return &UploadService{
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

// CreateUploadRequest is one transient upload submission. File is the
// multipart payload; it exists only for the duration of this call and is
// never persisted by this service.
type CreateUploadRequest struct {
	File        io.Reader
	Filename    string
	ContentType string
	Title       string
	Description string
}

// CreateUploadResponse acknowledges accepted bytes. Status "uploaded"
// means the target took the payload, not that the asset is playable;
// transcoding continues asynchronously inside the provider.
type CreateUploadResponse struct {
	UploadID string `json:"uploadId"`
	AssetID  string `json:"assetId"`
	Title    string `json:"title"`
	Status   string `json:"status"`
}

// Upload runs the two-step upload flow: provision a target carrying the
// encoded metadata, then stream the payload to it.
func (s *UploadService) Upload(ctx context.Context, req *CreateUploadRequest) (*CreateUploadResponse, error) {
	if req.File == nil {
		return nil, ErrMissingFile
	}

	correlationID := uuid.NewString()
	log := s.log.WithFields(map[string]any{"correlation_id": correlationID})

	title := req.Title
	if title == "" {
		title = req.Filename
	}

	encoded, err := passthrough.Encode(passthrough.Metadata{
		Title:       title,
		Description: req.Description,
		UploadedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	upload, err := s.provider.CreateUpload(ctx, encoded)
	if err != nil {
		log.Error("upload target creation failed", "error", err)
		return nil, err
	}

	log = log.WithUploadID(upload.ID).WithAssetID(upload.AssetID)
	log.Info("upload target created")

	contentType := req.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	if err := s.provider.PutObject(ctx, upload.URL, contentType, req.File); err != nil {
		log.Error("byte transfer failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	log.Info("upload accepted", "title", title)

	return &CreateUploadResponse{
		UploadID: upload.ID,
		AssetID:  upload.AssetID,
		Title:    title,
		Status:   "uploaded",
	}, nil
}
