// handlers_framework.go - Fixed section framework handler
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paperlens/backend/internal/models"
)

// FrameworkHandlerImpl implements the FrameworkHandler interface
type FrameworkHandlerImpl struct{}

// NewFrameworkHandler creates a new framework handler instance
func NewFrameworkHandler() FrameworkHandler {
	return &FrameworkHandlerImpl{}
}

// HandleGetFramework returns the twelve section headings in template order,
// so the frontend renders card labels from the single source of truth.
func (h *FrameworkHandlerImpl) HandleGetFramework(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sections": models.Framework(),
		"total":    models.SectionCount,
	})
}
