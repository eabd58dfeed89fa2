package container

import (
	"fmt"
	"net/http"

	"github.com/reelhouse/reelhouse/cmd/reelhouse/handlers"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/service"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/web"
	"github.com/reelhouse/reelhouse/common/bootstrap"
	"github.com/reelhouse/reelhouse/common/clients"
	"github.com/reelhouse/reelhouse/common/ratelimit"
)

// Container holds all initialized services and handlers, constructed
// once at process start. The provider client is explicit configuration
// injected here, not a hidden singleton.
type Container struct {
	Components *bootstrap.Components

	// Clients
	Provider *clients.MuxClient

	// Services
	VideoService  *service.VideoService
	UploadService *service.UploadService
	RateLimiter   *ratelimit.RateLimiter

	// Handlers
	VideoHandler  *handlers.VideoHandler
	UploadHandler *handlers.UploadHandler
	PageHandler   *web.PageHandler
}

// NewContainer initializes all services and handlers once
func NewContainer(components *bootstrap.Components) (*Container, error) {
	providerCfg := components.Config.Provider

	httpClient := clients.NewHTTPClient(&http.Client{
		Timeout: providerCfg.Timeout,
	}, components.Logger)

	provider := clients.NewMuxClient(
		httpClient,
		providerCfg.BaseURL,
		providerCfg.TokenID,
		providerCfg.TokenSecret,
		components.Logger,
	)

	// Services (bottom-up: dependencies first)
	videoService := service.NewVideoService(provider, components.Logger)
	uploadService := service.NewUploadService(provider, components.Logger)

	// Rate limiter only when Redis is available
	var limiter *ratelimit.RateLimiter
	if components.Redis != nil {
		limiter = ratelimit.NewRateLimiter(components.Redis.GetUnderlying(), components.Logger)
	}

	pageHandler, err := web.NewPageHandler(components, videoService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page handler: %w", err)
	}

	return &Container{
		Components:    components,
		Provider:      provider,
		VideoService:  videoService,
		UploadService: uploadService,
		RateLimiter:   limiter,
		VideoHandler:  handlers.NewVideoHandler(components, videoService),
		UploadHandler: handlers.NewUploadHandler(components, uploadService),
		PageHandler:   pageHandler,
	}, nil
}
