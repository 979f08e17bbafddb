// handlers_analyze.go - Upload-to-analysis flow handler
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paperlens/backend/internal/agent"
	"github.com/paperlens/backend/internal/extract"
)

// AnalyzeHandlerImpl implements the AnalyzeHandler interface
type AnalyzeHandlerImpl struct {
	agent   Analyzer
	results ResultStore
}

// NewAnalyzeHandler creates a new analyze handler instance
func NewAnalyzeHandler(agent Analyzer, results ResultStore) AnalyzeHandler {
	return &AnalyzeHandlerImpl{
		agent:   agent,
		results: results,
	}
}

// HandleAnalyzePaper accepts a multipart PDF upload, runs the analysis
// pipeline synchronously and returns the sectioned result. The paper is
// consumed in-request and never written to disk.
func (h *AnalyzeHandlerImpl) HandleAnalyzePaper(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("PDF file is required", err)
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError("failed to open upload", err)
	}
	defer src.Close()

	in := agent.Input{
		Title:    c.FormValue("title"),
		Authors:  c.FormValue("authors"),
		Notes:    c.FormValue("notes"),
		FileName: file.Filename,
		FileSize: file.Size,
		File:     src,
	}

	fmt.Printf("[API] Analyzing %s (%d bytes)\n", file.Filename, file.Size)

	analysis, err := h.agent.Analyze(c.Request().Context(), in)
	if err != nil {
		return mapAnalyzeError(err)
	}

	h.results.Put(analysis)

	return c.JSON(http.StatusOK, analysis)
}

// mapAnalyzeError translates pipeline failures into user-visible API errors.
func mapAnalyzeError(err error) *APIError {
	switch {
	case errors.Is(err, extract.ErrNotPDF):
		return NewUnsupportedMediaError("only PDF uploads are supported", err)
	case errors.Is(err, extract.ErrMalformed):
		return NewUnprocessableError("the PDF could not be read", err)
	case errors.Is(err, extract.ErrNoText):
		return NewUnprocessableError("no text could be extracted from the PDF", err)
	case errors.Is(err, agent.ErrQuotaExceeded):
		return NewTooManyRequestsError("the model quota is exhausted, try again later")
	case errors.Is(err, agent.ErrUnrecognizedReply):
		return NewUpstreamError("the model reply did not match the expected structure", err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewUpstreamError("the model call timed out", err)
	default:
		return NewUpstreamError("the model call failed", err)
	}
}
