// Package passthrough encodes video metadata into the opaque passthrough
// string the provider stores verbatim on each asset. It is the only data
// format this service defines itself; everything else on an asset is
// provider-owned.
package passthrough

import (
	"encoding/json"
	"time"
)

// Metadata is the record carried in an asset's passthrough field.
type Metadata struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt,omitempty"`
}

// Encode serializes metadata to the passthrough string.
func Encode(m Metadata) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a passthrough string back into metadata. It never fails:
// an empty, malformed or foreign passthrough yields a zero Metadata so
// callers fall back to the asset id for the title. A decode problem must
// never turn into a request failure.
func Decode(raw string) Metadata {
	if raw == "" {
		return Metadata{}
	}

	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return Metadata{}
	}
	return m
}
