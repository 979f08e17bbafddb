package agent_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/paperlens/backend/internal/agent"
	"github.com/paperlens/backend/internal/extract"
	"github.com/paperlens/backend/internal/models"
	"github.com/paperlens/backend/internal/testutil"
)

func pdfInput(t *testing.T, title string, pages ...string) agent.Input {
	t.Helper()
	data := testutil.MinimalPDF(pages...)
	return agent.Input{
		Title:    title,
		FileName: "paper.pdf",
		FileSize: int64(len(data)),
		File:     bytes.NewReader(data),
	}
}

func TestServiceAnalyze(t *testing.T) {
	mock := &testutil.MockClient{Reply: testutil.SampleReply()}
	svc := agent.NewService(mock, 5, time.Minute)

	in := pdfInput(t, "Adaptive Layouts", "Adaptive layouts reduce typing effort for motor-impaired users.")
	in.Authors = "Ortiz, 2023"
	in.Notes = "keep it short"

	analysis, err := svc.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.ID == "" {
		t.Error("expected a generated ID")
	}
	if analysis.Title != "Adaptive Layouts" {
		t.Errorf("expected title to be kept, got %q", analysis.Title)
	}
	if analysis.Model != "mock-model" {
		t.Errorf("expected model name from client, got %q", analysis.Model)
	}
	if analysis.PageCount != 1 {
		t.Errorf("expected 1 page read, got %d", analysis.PageCount)
	}
	if len(analysis.Sections) != models.SectionCount {
		t.Fatalf("expected %d sections, got %d", models.SectionCount, len(analysis.Sections))
	}

	// The sample reply flags one claim in the key findings
	if analysis.Cautions != 1 {
		t.Errorf("expected 1 caution total, got %d", analysis.Cautions)
	}
	if analysis.Sections[7].Cautions != 1 {
		t.Errorf("expected the caution in key findings, got %d", analysis.Sections[7].Cautions)
	}
	if !analysis.Sections[8].Inferred {
		t.Error("expected the research gap to be marked as inference")
	}

	// The extracted page text reaches the model
	if !strings.Contains(mock.LastPrompt, "Adaptive layouts reduce typing effort") {
		t.Error("expected extracted text in the prompt")
	}
	if !strings.Contains(mock.LastPrompt, "Title: Adaptive Layouts") {
		t.Error("expected title in the prompt")
	}
}

func TestServiceAnalyze_BlankTitleDefaults(t *testing.T) {
	mock := &testutil.MockClient{Reply: testutil.SampleReply()}
	svc := agent.NewService(mock, 5, 0)

	analysis, err := svc.Analyze(context.Background(), pdfInput(t, "   ", "Some page text."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Title != agent.DefaultTitle {
		t.Errorf("expected default title %q, got %q", agent.DefaultTitle, analysis.Title)
	}
}

func TestServiceAnalyze_MaxPagesCap(t *testing.T) {
	mock := &testutil.MockClient{Reply: testutil.SampleReply()}
	svc := agent.NewService(mock, 2, 0)

	in := pdfInput(t, "Long Paper", "Page one text.", "Page two text.", "Page three text.")
	analysis, err := svc.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.PageCount != 2 {
		t.Errorf("expected 2 pages read, got %d", analysis.PageCount)
	}
	if strings.Contains(mock.LastPrompt, "Page three text.") {
		t.Error("page past the cap should not reach the model")
	}
}

func TestServiceAnalyze_NonPDF(t *testing.T) {
	mock := &testutil.MockClient{Reply: testutil.SampleReply()}
	svc := agent.NewService(mock, 5, 0)

	data := []byte("plain text, not a pdf")
	in := agent.Input{
		FileName: "notes.txt",
		FileSize: int64(len(data)),
		File:     bytes.NewReader(data),
	}

	_, err := svc.Analyze(context.Background(), in)
	if !errors.Is(err, extract.ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
	if mock.Calls() != 0 {
		t.Error("model should not be called for a rejected upload")
	}
}

func TestServiceAnalyze_ClientErrorPassthrough(t *testing.T) {
	mock := &testutil.MockClient{Err: agent.ErrQuotaExceeded}
	svc := agent.NewService(mock, 5, 0)

	_, err := svc.Analyze(context.Background(), pdfInput(t, "t", "Some page text."))
	if !errors.Is(err, agent.ErrQuotaExceeded) {
		t.Fatalf("expected quota error to pass through, got %v", err)
	}
}

func TestServiceAnalyze_UnparseableReply(t *testing.T) {
	mock := &testutil.MockClient{Reply: "I cannot help with that."}
	svc := agent.NewService(mock, 5, 0)

	_, err := svc.Analyze(context.Background(), pdfInput(t, "t", "Some page text."))
	if !errors.Is(err, agent.ErrUnrecognizedReply) {
		t.Fatalf("expected ErrUnrecognizedReply, got %v", err)
	}
}
