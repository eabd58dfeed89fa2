package service

import (
	"context"
	"strings"

	"github.com/reelhouse/reelhouse/cmd/reelhouse/models"
	"github.com/reelhouse/reelhouse/common/clients"
	"github.com/reelhouse/reelhouse/common/logger"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// AssetReader is the slice of the provider client the video service needs
type AssetReader interface {
	GetAsset(ctx context.Context, id string) (*clients.Asset, error)
	ListAssets(ctx context.Context, page, limit int) ([]clients.Asset, error)
}

// VideoService normalizes provider assets into viewer-facing videos
type VideoService struct {
	provider AssetReader
	log      *logger.Logger
}

// NewVideoService creates a new video service
func NewVideoService(provider AssetReader, log *logger.Logger) *VideoService {
	return &VideoService{
		provider: provider,
		log:      log,
	}
}

// GetVideo fetches one asset and normalizes it. An asset that is absent,
// still preparing, errored or without a playback id all come back as
// ErrNotFound: viewers cannot tell these apart, which keeps unfinished
// uploads invisible.
func (s *VideoService) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	log := s.log.WithAssetID(id)

	asset, err := s.provider.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	if !asset.Playable() {
		log.Debug("asset not playable", "status", asset.Status)
		return nil, clients.ErrNotFound
	}

	video := models.FromAsset(asset)
	return &video, nil
}

// ListVideosRequest holds list parameters after defaulting
type ListVideosRequest struct {
	Search string
	Page   int
	Limit  int
}

// ListVideosResponse is one filtered page of videos. Total is the
// pre-filter fetched count, not a cross-page total; a true total would
// need a provider count call this system does not make.
type ListVideosResponse struct {
	Videos []models.Video
	Page   int
	Limit  int
	Total  int
}

// ListVideos fetches one provider page, keeps playable assets and applies
// the optional search filter.
func (s *VideoService) ListVideos(ctx context.Context, req ListVideosRequest) (*ListVideosResponse, error) {
	page := req.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	assets, err := s.provider.ListAssets(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(assets))
	for i := range assets {
		asset := &assets[i]
		if !asset.Playable() {
			continue
		}

		video := models.FromAsset(asset)
		if req.Search != "" && !matchesSearch(video, req.Search) {
			continue
		}
		videos = append(videos, video)
	}

	s.log.Debug("listed videos",
		"fetched", len(assets),
		"returned", len(videos),
		"page", page,
		"search", req.Search)

	return &ListVideosResponse{
		Videos: videos,
		Page:   page,
		Limit:  limit,
		Total:  len(assets),
	}, nil
}

// matchesSearch reports whether any of title, description or id contains
// the query, case-insensitively.
func matchesSearch(v models.Video, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Description), q) ||
		strings.Contains(strings.ToLower(v.ID), q)
}
