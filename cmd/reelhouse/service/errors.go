package service

import "errors"

var (
	// ErrMissingFile indicates the client omitted the required video payload
	ErrMissingFile = errors.New("no video file provided")

	// ErrUploadFailed indicates the byte transfer to the provisioned
	// upload target failed after the target was created successfully
	ErrUploadFailed = errors.New("failed to upload video")
)
