// handlers_results.go - Stored analysis read handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// ResultsHandlerImpl implements the ResultsHandler interface
type ResultsHandlerImpl struct {
	results ResultStore
}

// NewResultsHandler creates a new results handler instance
func NewResultsHandler(results ResultStore) ResultsHandler {
	return &ResultsHandlerImpl{
		results: results,
	}
}

// HandleListAnalyses returns summaries of stored analyses, newest first
func (h *ResultsHandlerImpl) HandleListAnalyses(c echo.Context) error {
	list := h.results.List()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"analyses": list,
		"total":    len(list),
	})
}

// HandleGetAnalysis returns one stored analysis
func (h *ResultsHandlerImpl) HandleGetAnalysis(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	analysis, ok := h.results.Get(id)
	if !ok {
		return NewNotFoundError("analysis", id)
	}

	// Touch to prevent cleanup while being viewed
	h.results.Touch(id)

	return c.JSON(http.StatusOK, analysis)
}

// HandleGetAnalysisMsgpack returns one stored analysis in MessagePack format.
// MessagePack is 30-50% smaller than JSON for card refreshes.
func (h *ResultsHandlerImpl) HandleGetAnalysisMsgpack(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	analysis, ok := h.results.Get(id)
	if !ok {
		return NewNotFoundError("analysis", id)
	}

	h.results.Touch(id)

	data, err := msgpack.Marshal(map[string]interface{}{
		"analysis": analysis,
	})
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleAnalysisKeepAlive extends the TTL while the user is reading
func (h *ResultsHandlerImpl) HandleAnalysisKeepAlive(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	if ok := h.results.Touch(id); !ok {
		return NewNotFoundError("analysis", id)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleDeleteAnalysis discards a stored analysis early
func (h *ResultsHandlerImpl) HandleDeleteAnalysis(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	if ok := h.results.Delete(id); !ok {
		return NewNotFoundError("analysis", id)
	}

	return c.NoContent(http.StatusNoContent)
}
