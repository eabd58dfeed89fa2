package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/reelhouse/reelhouse/common/clients"
)

// PropagateRequestID copies the inbound request id into the request
// context so outbound provider calls carry it as X-Request-ID. Must be
// registered after echo's RequestID middleware.
func PropagateRequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Request().Header.Get(echo.HeaderXRequestID)
			}

			if requestID != "" {
				ctx := clients.WithRequestID(c.Request().Context(), requestID)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		}
	}
}
