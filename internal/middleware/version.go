package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"riskdesk/internal/version"
)

const apiVersionKey = "api_version"

// ResolveVersion negotiates the API version from the configured request
// header. Missing headers fall back to the default version; unrecognized
// values are rejected before the handler runs.
func ResolveVersion(resolver *version.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := resolver.Resolve(c.Request().Header.Get(resolver.HeaderName()))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"status":  http.StatusBadRequest,
					"message": err.Error(),
				})
			}
			c.Set(apiVersionKey, v)
			return next(c)
		}
	}
}

// GetAPIVersion extracts the negotiated API version from echo context
func GetAPIVersion(c echo.Context) version.Version {
	if v, ok := c.Get(apiVersionKey).(version.Version); ok {
		return v
	}
	return ""
}
