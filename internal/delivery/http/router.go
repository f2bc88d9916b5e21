package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"riskdesk/configs"
	custommiddleware "riskdesk/internal/middleware"
	"riskdesk/internal/version"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	API                 configs.APIConfig
	VersionResolver     *version.Resolver
	CounterpartyHandler *CounterpartyHandler
	CryptoHandler       *CryptocurrencyHandler
	TransferHandler     *TransferHandler
	DB                  interface{ Ping(context.Context) error }
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.CorrelationID)
	e.Use(custommiddleware.ExecutionTime)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "Welcome to riskdesk",
			"endpoints": map[string]string{
				"health":                     "GET /health",
				"counterparty_risk_profiles": config.API.BasePath + config.API.CounterpartyPath,
				"cryptocurrencies":           config.API.BasePath + config.API.CryptoPath,
				"transferencias":             config.API.BasePath + config.API.TransferPath,
			},
		})
	})

	// Health check
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbStatus := "healthy"
		if err := config.DB.Ping(ctx); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"service":   "riskdesk-api",
			"database":  dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// API group, version negotiated per request
	api := e.Group(config.API.BasePath, custommiddleware.ResolveVersion(config.VersionResolver))

	counterparties := api.Group(config.API.CounterpartyPath)
	{
		counterparties.POST("", config.CounterpartyHandler.Create)
		counterparties.GET("", config.CounterpartyHandler.GetAll)
		counterparties.GET("/:id", config.CounterpartyHandler.GetByID)
		counterparties.PUT("/:id", config.CounterpartyHandler.Update)
		counterparties.DELETE("/:id", config.CounterpartyHandler.Delete)
	}

	cryptos := api.Group(config.API.CryptoPath)
	{
		cryptos.POST("", config.CryptoHandler.Create)
		cryptos.GET("", config.CryptoHandler.GetAll)
		cryptos.GET("/:id", config.CryptoHandler.GetByID)
		cryptos.PUT("/:id", config.CryptoHandler.Update)
		cryptos.DELETE("/:id", config.CryptoHandler.Delete)
	}

	transfers := api.Group(config.API.TransferPath)
	{
		transfers.POST("", config.TransferHandler.Create)
		transfers.GET("", config.TransferHandler.GetAll)
		transfers.GET("/:id", config.TransferHandler.GetByID)
		transfers.PUT("/:id", config.TransferHandler.Update)
		transfers.DELETE("/:id", config.TransferHandler.Delete)
	}
}
