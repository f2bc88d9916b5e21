package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CorrelationIDHeader is the inbound/outbound header carrying the correlation id.
const CorrelationIDHeader = "X-Correlation-Id"

const correlationIDKey = "correlation_id"

// CorrelationID echoes the inbound correlation id, or generates one when the
// header is missing or blank, and sets it on the response so callers can
// thread log lines together.
func CorrelationID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(CorrelationIDHeader)
		if strings.TrimSpace(id) == "" {
			id = uuid.NewString()
		}
		c.Set(correlationIDKey, id)
		c.Response().Header().Set(CorrelationIDHeader, id)
		return next(c)
	}
}

// GetCorrelationID extracts the correlation id from echo context
func GetCorrelationID(c echo.Context) string {
	if id, ok := c.Get(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
