// Package document turns spec sheets (PDF, DOCX, XLSX, HTML or plain text)
// into text and runs the laptop extractor over it.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/lapwise/internal/extract"
)

// Reader reads spec sheets.
type Reader struct {
	extractor *extract.Extractor
}

// NewReader returns a Reader using extractor, or the default extractor when nil.
func NewReader(extractor *extract.Extractor) *Reader {
	if extractor == nil {
		extractor = extract.NewExtractor()
	}
	return &Reader{extractor: extractor}
}

// Text returns the text of content based on ext, which includes the leading
// dot (e.g. ".pdf"). Unknown extensions are read as plain text.
func (r *Reader) Text(content []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return pdfText(content)
	case ".docx":
		return docxText(content)
	case ".xlsx":
		return xlsxText(content)
	default:
		return plainText(content), nil
	}
}

// ReadFile reads and extracts the spec sheet at path.
func (r *Reader) ReadFile(path, sourceURL string) (*extract.Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return r.Read(content, filepath.Base(path), sourceURL)
}

// Read extracts laptop fields from a spec sheet named filename. The first
// line is offered to the title rules, since spec sheets rarely carry markup.
func (r *Reader) Read(content []byte, filename, sourceURL string) (*extract.Result, error) {
	text, err := r.Text(content, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}
	if title := firstLine(text); title != "" && !strings.Contains(text, "<title>") {
		text = "<title>" + title + "</title>\n" + text
	}
	return r.extractor.Extract(text, sourceURL), nil
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
