package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// ExecutionTime logs how long each request took, tagged with the correlation
// id, and reports any error that escaped the handler chain.
func ExecutionTime(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start)

		req := c.Request()
		if err != nil {
			log.Printf("[ERROR] %s %s failed after %s: %v (correlation_id=%s)",
				req.Method, req.URL.Path, duration, err, GetCorrelationID(c))
			return err
		}

		log.Printf("[INFO] %s %s took %s (correlation_id=%s)",
			req.Method, req.URL.Path, duration, GetCorrelationID(c))
		return nil
	}
}
