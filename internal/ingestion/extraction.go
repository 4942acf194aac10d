// Package ingestion extracts plain text from uploaded resume documents.
// Supported formats are PDF, DOCX, and plain text; anything else is rejected
// before the screening pipeline runs.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExtensions is the allow-list of resume file extensions.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// UnsupportedFormatError indicates a file extension outside the allow-list.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: use one of %s", e.Extension, strings.Join(SupportedExtensions, ", "))
}

// ExtractionError indicates a supported file that could not be read. The
// underlying cause is attached; no partial text is returned.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s document: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// IsSupported reports whether the filename's extension is on the allow-list.
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ExtractText reads a resume file and returns its plain text.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return "", &UnsupportedFormatError{Extension: ext}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return ExtractTextFromBytes(data, ext)
}

// ExtractTextFromBytes extracts plain text from in-memory document content.
// ext must include the leading dot.
func ExtractTextFromBytes(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".txt":
		return string(data), nil
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: "PDF", Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Cause: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return stripDocxTags(content), nil
}

// stripDocxTags reduces raw document XML to readable text: paragraph breaks
// become newlines and remaining tags are dropped.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
