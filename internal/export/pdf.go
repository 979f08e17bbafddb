// Package export renders an analysis to a downloadable PDF document.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/paperlens/backend/internal/models"
)

// FileName derives the download filename from the analysis title, spaces
// replaced and anything hostile to Content-Disposition stripped.
func FileName(title string) string {
	name := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '-', r == '.':
			return r
		}
		return -1
	}, name)
	name = strings.Trim(name, "._")
	if name == "" {
		name = "paper_summary"
	}
	return name + ".pdf"
}

// PDF writes the analysis to w as a PDF document. The content mirrors the
// rendered cards: title, metadata line, then every section in framework
// order with its numbered heading.
func PDF(a *models.Analysis, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(a.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; ⚠ has no slot there.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, tr(sanitize(a.Title)), "", "L", false)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.MultiCell(0, 5, tr(sanitize(metaLine(a))), "", "L", false)
	pdf.Ln(4)

	for _, sec := range a.Sections {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(20, 20, 20)
		pdf.MultiCell(0, 7, tr(sanitize(fmt.Sprintf("%d) %s", sec.Index, sec.Label))), "", "L", false)

		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(0, 6, tr(sanitize(sec.Content)), "", "L", false)
		pdf.Ln(3)
	}

	return pdf.Output(w)
}

func metaLine(a *models.Analysis) string {
	parts := make([]string, 0, 4)
	if a.Authors != "" {
		parts = append(parts, a.Authors)
	}
	parts = append(parts, "Model: "+a.Model)
	if a.Cautions > 0 {
		parts = append(parts, fmt.Sprintf("%d flagged claims", a.Cautions))
	}
	parts = append(parts, "Generated: "+a.CreatedAt.Format("2006-01-02 15:04"))
	return strings.Join(parts, " | ")
}

// sanitize replaces the caution marker with an ASCII stand-in that
// survives the core-font code page.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "⚠", "[!]")
}
