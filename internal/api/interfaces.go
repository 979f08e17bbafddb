// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/paperlens/backend/internal/agent"
	"github.com/paperlens/backend/internal/models"
)

// AnalyzeHandler handles the upload-to-analysis flow
type AnalyzeHandler interface {
	HandleAnalyzePaper(c echo.Context) error
}

// ResultsHandler handles reads of stored analyses
type ResultsHandler interface {
	HandleListAnalyses(c echo.Context) error
	HandleGetAnalysis(c echo.Context) error
	HandleGetAnalysisMsgpack(c echo.Context) error
	HandleAnalysisKeepAlive(c echo.Context) error
	HandleDeleteAnalysis(c echo.Context) error
}

// ExportHandler handles document export
type ExportHandler interface {
	HandleExportAnalysis(c echo.Context) error
}

// FrameworkHandler serves the fixed section framework
type FrameworkHandler interface {
	HandleGetFramework(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// Analyzer runs the upload-to-analysis pipeline.
// This allows mocking in tests
type Analyzer interface {
	Analyze(ctx context.Context, in agent.Input) (*models.Analysis, error)
}

// ResultStore is the transient store of recent analyses.
// This allows mocking in tests
type ResultStore interface {
	Put(a *models.Analysis)
	Get(id string) (*models.Analysis, bool)
	Touch(id string) bool
	Delete(id string) bool
	List() []models.AnalysisSummary
}
