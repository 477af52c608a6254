package document

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	docxBodyPath     = "word/document.xml"
	contentTypesPath = "[Content_Types].xml"
	docxMainType     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

var (
	// w:p and w:t carry attributes in real documents, so both are matched loosely.
	paragraphRe = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	textRunRe   = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
	overrideRe  = regexp.MustCompile(`<Override[^>]*/?>`)
	partNameRe  = regexp.MustCompile(`PartName="([^"]+)"`)
)

// docxText returns one line per non-empty paragraph.
func docxText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("DOCX is not a zip: %w", err)
	}

	bodyPath := docxBodyPath
	if types, err := readZipFile(zr, contentTypesPath); err == nil {
		if p := mainDocumentPath(string(types)); p != "" {
			bodyPath = p
		}
	}
	body, err := readZipFile(zr, bodyPath)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, para := range paragraphRe.FindAllString(string(body), -1) {
		var runs []string
		for _, m := range textRunRe.FindAllStringSubmatch(para, -1) {
			runs = append(runs, m[1])
		}
		if line := strings.TrimSpace(strings.Join(runs, "")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// mainDocumentPath finds the main document part in [Content_Types].xml,
// whatever the attribute order. It returns "" when none is declared.
func mainDocumentPath(types string) string {
	for _, override := range overrideRe.FindAllString(types, -1) {
		if !strings.Contains(override, `ContentType="`+docxMainType+`"`) {
			continue
		}
		if m := partNameRe.FindStringSubmatch(override); m != nil {
			return strings.TrimPrefix(m[1], "/")
		}
	}
	return ""
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%s not found", name)
}
