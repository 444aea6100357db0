package api

import (
	"github.com/Conceptual-Machines/rug-loom/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/rug-loom/internal/api/middleware"
	"github.com/Conceptual-Machines/rug-loom/internal/config"
	"github.com/Conceptual-Machines/rug-loom/internal/metrics"
	webhandlers "github.com/Conceptual-Machines/rug-loom/internal/web/handlers"
	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived services the routes are built over
type Dependencies struct {
	Config   *config.Config
	Themes   handlers.ThemeResolver
	Recorder *metrics.Recorder
	// CacheName labels the theme store in /health ("postgres" or "memory")
	CacheName string
	Version   string
}

func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.Recorder))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.Themes, deps.CacheName)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(deps.Version, deps.Themes)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Web pages
	webHandler := webhandlers.NewWebHandler(deps.Themes)
	router.GET("/", webHandler.Home)

	v1 := router.Group("/api/v1")
	v1.Use(apimiddleware.Auth(deps.Config.IsGatewayMode()))
	{
		catalogHandler := handlers.NewCatalogHandler(deps.Config.MaxGridDimension)
		v1.GET("/catalog", catalogHandler.GetCatalog)

		rugHandler := handlers.NewRugHandler(deps.Themes, deps.Recorder, deps.Config.MaxGridDimension)
		v1.POST("/rugs", rugHandler.Generate)
		v1.POST("/rugs/export", rugHandler.Export)
		v1.POST("/rugs/ansi", rugHandler.ANSI)
		v1.POST("/rugs/preview", rugHandler.Preview)

		themeHandler := handlers.NewThemeHandler(deps.Themes)
		v1.POST("/themes", themeHandler.Resolve)
		v1.GET("/themes/:key", themeHandler.Latest)

		v1.POST("/motifs/toggle", handlers.ToggleMotif)
	}

	return router
}
