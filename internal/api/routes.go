// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/labstack/echo/v4"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Agent    Analyzer
	Results  ResultStore
	Version  string
	Provider string
	Model    string
}

// Handlers holds all handler instances
type Handlers struct {
	Health    HealthHandler
	Analyze   AnalyzeHandler
	Results   ResultsHandler
	Export    ExportHandler
	Framework FrameworkHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(deps.Version, deps.Provider, deps.Model),
		Analyze:   NewAnalyzeHandler(deps.Agent, deps.Results),
		Results:   NewResultsHandler(deps.Results),
		Export:    NewExportHandler(deps.Results),
		Framework: NewFrameworkHandler(),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	// Health check
	e.GET("/health", handlers.Health.HandleHealth)
	e.GET("/api/health", handlers.Health.HandleHealth)

	// Section framework
	e.GET("/api/framework", handlers.Framework.HandleGetFramework)

	// Paper analysis
	papersGroup := e.Group("/api/papers")
	papersGroup.POST("/analyze", handlers.Analyze.HandleAnalyzePaper)

	// Stored analysis routes
	analysesGroup := e.Group("/api/analyses")
	analysesGroup.GET("", handlers.Results.HandleListAnalyses)
	analysesGroup.GET("/:id", handlers.Results.HandleGetAnalysis)
	analysesGroup.GET("/:id/msgpack", handlers.Results.HandleGetAnalysisMsgpack)
	analysesGroup.GET("/:id/export", handlers.Export.HandleExportAnalysis)
	analysesGroup.POST("/:id/keepalive", handlers.Results.HandleAnalysisKeepAlive)
	analysesGroup.DELETE("/:id", handlers.Results.HandleDeleteAnalysis)
}

// SetupMiddleware configures common middleware
func SetupMiddleware(e *echo.Echo) {
	// Use custom error handler
	e.HTTPErrorHandler = ErrorHandler
}
