// handlers_export_test.go - Tests for the PDF export handler
package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/paperlens/backend/internal/extract"
	"github.com/paperlens/backend/internal/session"
	"github.com/paperlens/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestExportHandler_HandleExportAnalysis(t *testing.T) {
	e := echo.New()
	results := session.NewStore(0, 0)
	handler := NewExportHandler(results)

	stored := testutil.NewTestAnalysis("Gesture Typing Study")
	results.Put(stored)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/:id/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(stored.ID)

	if !assert.NoError(t, handler.HandleExportAnalysis(c)) {
		return
	}
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `attachment; filename="Gesture_Typing_Study.pdf"`)

	body := rec.Body.Bytes()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")), "export should be a PDF document")

	// The exported document carries the same sections the client renders
	res, err := extract.Text(bytes.NewReader(body), int64(len(body)), 0)
	if !assert.NoError(t, err) {
		return
	}
	assert.Contains(t, res.Text, "Gesture Typing Study")
	for _, section := range stored.Sections {
		assert.Contains(t, res.Text, section.Label)
		assert.Contains(t, res.Text, strings.TrimSpace(section.Content))
	}
}

func TestExportHandler_UnknownAnalysis(t *testing.T) {
	e := echo.New()
	handler := NewExportHandler(session.NewStore(0, 0))

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/:id/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("does-not-exist")

	err := handler.HandleExportAnalysis(c)
	if assert.Error(t, err) {
		apiErr, ok := err.(*APIError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusNotFound, apiErr.Status)
			assert.Equal(t, "NOT_FOUND", apiErr.Code)
		}
	}
}
