package clients

import "errors"

var (
	// ErrNotFound indicates the provider has no asset with the requested id
	ErrNotFound = errors.New("asset not found")

	// ErrProviderUnavailable indicates the provider call failed: network
	// error, authentication failure or a non-success response
	ErrProviderUnavailable = errors.New("video provider unavailable")
)
