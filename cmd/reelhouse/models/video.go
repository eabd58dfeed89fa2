package models

import (
	"github.com/reelhouse/reelhouse/common/clients"
	"github.com/reelhouse/reelhouse/common/passthrough"
)

// Video is the normalized record this service exposes to viewers. It is
// derived from a provider asset on every read; nothing is persisted here.
type Video struct {
	ID          string  `json:"id"`
	PlaybackID  string  `json:"playbackId"`
	Policy      string  `json:"policy"`
	Status      string  `json:"status"`
	Duration    float64 `json:"duration"`
	AspectRatio string  `json:"aspectRatio"`
	CreatedAt   string  `json:"createdAt"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// FromAsset normalizes a playable provider asset. The first playback id
// is always selected. Metadata comes from the passthrough codec with the
// fallbacks the codec's tolerance demands: title falls back to the asset
// id, description to empty.
func FromAsset(a *clients.Asset) Video {
	meta := passthrough.Decode(a.Passthrough)

	title := meta.Title
	if title == "" {
		title = a.ID
	}

	return Video{
		ID:          a.ID,
		PlaybackID:  a.PlaybackIDs[0].ID,
		Policy:      a.PlaybackIDs[0].Policy,
		Status:      a.Status,
		Duration:    a.Duration,
		AspectRatio: a.AspectRatio,
		CreatedAt:   a.CreatedAt,
		Title:       title,
		Description: meta.Description,
	}
}
