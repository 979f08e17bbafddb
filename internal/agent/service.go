package agent

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperlens/backend/internal/extract"
	"github.com/paperlens/backend/internal/models"
)

// Input carries one uploaded paper through the pipeline.
type Input struct {
	Title    string
	Authors  string
	Notes    string
	FileName string
	FileSize int64
	File     io.ReaderAt
}

// Service runs the extract, prompt, generate, parse pipeline synchronously
// within the calling request.
type Service struct {
	client   Client
	maxPages int
	timeout  time.Duration
}

// NewService creates an analysis service backed by the given provider client.
func NewService(client Client, maxPages int, timeout time.Duration) *Service {
	return &Service{client: client, maxPages: maxPages, timeout: timeout}
}

// Analyze extracts text from the uploaded PDF, prompts the model and splits
// the reply into the framework sections. The model call is bounded by the
// configured timeout. Errors pass through unwrapped so the handler can map
// extraction and provider failures to their status codes.
func (s *Service) Analyze(ctx context.Context, in Input) (*models.Analysis, error) {
	res, err := extract.Text(in.File, in.FileSize, s.maxPages)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[Agent] Extracted %d/%d pages (%d chars) from %s\n", res.PagesRead, res.TotalPages, len(res.Text), in.FileName)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = DefaultTitle
	}

	prompt := BuildPrompt(title, in.Authors, res.Text, in.Notes)

	cctx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.client.Generate(cctx, prompt)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	sections, err := ParseSections(reply)
	if err != nil {
		return nil, err
	}

	cautions := 0
	for _, sec := range sections {
		cautions += sec.Cautions
	}

	analysis := &models.Analysis{
		ID:        uuid.New().String(),
		Title:     title,
		Authors:   strings.TrimSpace(in.Authors),
		Notes:     strings.TrimSpace(in.Notes),
		Model:     s.client.Model(),
		FileName:  in.FileName,
		FileSize:  in.FileSize,
		PageCount: res.PagesRead,
		Sections:  sections,
		Cautions:  cautions,
		CreatedAt: time.Now(),
		ElapsedMs: elapsed.Milliseconds(),
	}

	fmt.Printf("[Agent] Analysis %s ready in %dms (%d cautions)\n", shortID(analysis.ID), analysis.ElapsedMs, cautions)

	return analysis, nil
}

// shortID safely truncates an ID for logging (handles short IDs gracefully)
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
