package middleware

import (
	"whyEngine/business/engine"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const TraceHeader = "X-Trace-Id"

// TraceMiddleware assigns every request a trace id (honoring one supplied
// by the caller) and threads it through the request context so service
// logs can be correlated.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(TraceHeader)
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := engine.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceHeader, tid)

			return next(c)
		}
	}
}
