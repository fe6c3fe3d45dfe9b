package middleware

import (
	"net/http"

	"whyEngine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler turns unhandled errors into JSON responses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if err := c.JSON(code, echo.Map{"message": message}); err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}
