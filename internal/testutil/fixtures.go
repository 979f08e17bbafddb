// fixtures.go - Shared test fixtures
package testutil

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperlens/backend/internal/models"
)

// SampleReply returns a model reply that follows the analysis template,
// with every heading present. The key findings carry one flagged claim
// and the research gap is marked as an inference.
func SampleReply() string {
	var b strings.Builder
	for _, spec := range models.Framework() {
		b.WriteString(spec.Marker())
		b.WriteString("\n")
		switch spec.Key {
		case "key-findings":
			b.WriteString("- Users completed tasks 23% faster with the adaptive layout\n")
			b.WriteString("- ⚠ The authors claim this generalizes to all age groups without evidence\n")
		case "research-gap":
			b.WriteString("(Inference) The paper addresses the lack of longitudinal studies on adaptive interfaces.\n")
		default:
			b.WriteString(fmt.Sprintf("Summary content for the %s section.\n", strings.ToLower(spec.Label)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// NewTestAnalysis builds a complete analysis result for handler tests.
func NewTestAnalysis(title string) *models.Analysis {
	framework := models.Framework()
	sections := make([]models.Section, len(framework))
	for i, spec := range framework {
		sections[i] = models.Section{
			Index:   spec.Index,
			Key:     spec.Key,
			Label:   spec.Label,
			Content: fmt.Sprintf("Content for %s.", spec.Label),
		}
	}

	now := time.Now()
	return &models.Analysis{
		ID:        uuid.New().String(),
		Title:     title,
		Model:     "mock-model",
		FileName:  "paper.pdf",
		FileSize:  2048,
		PageCount: 3,
		Sections:  sections,
		CreatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
		ElapsedMs: 1200,
	}
}

// MinimalPDF builds a small but well-formed PDF with one page per given
// string. Cross-reference offsets are computed, so strict parsers accept it.
func MinimalPDF(pages ...string) []byte {
	if len(pages) == 0 {
		pages = []string{"Hello world"}
	}

	var buf bytes.Buffer
	var offsets []int

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), len(pages)))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n")

	for i, text := range pages {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageNum, contentNum))

		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escapePDFString(text))
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentNum, len(stream), stream))
	}

	xrefStart := buf.Len()
	total := len(offsets) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", total)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total, xrefStart)

	return buf.Bytes()
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return r.Replace(s)
}
