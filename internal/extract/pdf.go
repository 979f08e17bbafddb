// Package extract pulls plain text out of uploaded PDF files.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotPDF means the upload does not carry the PDF magic header.
	ErrNotPDF = errors.New("file is not a PDF")
	// ErrMalformed means the file claims to be a PDF but cannot be parsed.
	ErrMalformed = errors.New("malformed PDF")
	// ErrNoText means the readable pages contained no extractable text,
	// e.g. a scanned paper without an OCR layer.
	ErrNoText = errors.New("no text extracted from PDF")
)

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether the content starts with the PDF magic header.
// The filename extension is not trusted.
func IsPDF(f io.ReaderAt) bool {
	buf := make([]byte, len(pdfMagic))
	if _, err := f.ReadAt(buf, 0); err != nil {
		return false
	}
	return bytes.Equal(buf, pdfMagic)
}

// Result holds the extracted text and page accounting.
type Result struct {
	Text       string `json:"text"`
	PagesRead  int    `json:"pagesRead"`
	TotalPages int    `json:"totalPages"`
}

// Text extracts plain text from at most maxPages pages of a PDF.
// Pages that fail individually are skipped; only a fully unreadable
// document is an error. The pdf library panics on some malformed
// inputs, so those are recovered into errors here.
func Text(f io.ReaderAt, size int64, maxPages int) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	if !IsPDF(f) {
		return nil, ErrNotPDF
	}

	reader, err := pdf.NewReader(f, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	total := reader.NumPage()
	limit := total
	if maxPages > 0 && maxPages < limit {
		limit = maxPages
	}

	var sb strings.Builder
	read := 0
	for i := 1; i <= limit; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			fmt.Printf("[Extract] Skipping page %d: %v\n", i, err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		read++
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return nil, ErrNoText
	}

	return &Result{Text: out, PagesRead: read, TotalPages: total}, nil
}
