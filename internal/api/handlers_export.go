// handlers_export.go - Analysis-to-PDF export handler
package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paperlens/backend/internal/export"
)

// ExportHandlerImpl implements the ExportHandler interface
type ExportHandlerImpl struct {
	results ResultStore
}

// NewExportHandler creates a new export handler instance
func NewExportHandler(results ResultStore) ExportHandler {
	return &ExportHandlerImpl{
		results: results,
	}
}

// HandleExportAnalysis renders a stored analysis to PDF and serves it as a
// download. The document carries the same sections the client renders.
func (h *ExportHandlerImpl) HandleExportAnalysis(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	analysis, ok := h.results.Get(id)
	if !ok {
		return NewNotFoundError("analysis", id)
	}

	h.results.Touch(id)

	var buf bytes.Buffer
	if err := export.PDF(analysis, &buf); err != nil {
		return NewInternalError("failed to render PDF", err)
	}

	filename := export.FileName(analysis.Title)
	fmt.Printf("[API] Exporting analysis %s as %s (%d bytes)\n", id, filename, buf.Len())

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
