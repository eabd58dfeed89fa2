package main

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/container"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/middleware"
	"github.com/reelhouse/reelhouse/cmd/reelhouse/routes"
	"github.com/reelhouse/reelhouse/common/bootstrap"
	"github.com/reelhouse/reelhouse/common/server"
)

func main() {
	ctx := context.Background()

	// Bootstrap common components (config, logger, redis, telemetry)
	components, err := bootstrap.Setup(ctx, "reelhouse")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap reelhouse: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	// Initialize service container (all services created once)
	serviceContainer, err := container.NewContainer(components)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize service container: %v\n", err)
		os.Exit(1)
	}

	// Initialize Echo server
	e := setupEcho()

	// Setup middleware
	setupMiddleware(e)

	// Setup health check
	setupHealthCheck(e, serviceContainer)

	// Register all routes
	registerRoutes(e, serviceContainer)

	// Start server with graceful shutdown
	srv := server.New("reelhouse", components.Config.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// setupEcho initializes the Echo server with basic configuration
func setupEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	return e
}

// setupMiddleware configures all middleware for the Echo server
func setupMiddleware(e *echo.Echo) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestID())
	e.Use(middleware.PropagateRequestID())
}

// setupHealthCheck registers the health check endpoint
func setupHealthCheck(e *echo.Echo, c *container.Container) {
	e.GET("/health", func(ec echo.Context) error {
		if err := c.Components.Health(ec.Request().Context()); err != nil {
			return ec.JSON(503, map[string]string{
				"status":  "degraded",
				"service": "reelhouse",
			})
		}
		return ec.JSON(200, map[string]string{
			"status":  "ok",
			"service": "reelhouse",
		})
	})
}

// registerRoutes registers all application routes using the service container
func registerRoutes(e *echo.Echo, serviceContainer *container.Container) {
	routes.RegisterVideoRoutes(e, serviceContainer)
	routes.RegisterUploadRoutes(e, serviceContainer)
	routes.RegisterPageRoutes(e, serviceContainer)
}
