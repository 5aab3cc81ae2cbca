package ingestion

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	xmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	inlineWSRe   = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLinesRe = regexp.MustCompile(`\n{2,}`)
)

// ExtractText extracts plain text from an uploaded file. The format is
// chosen by declared media type first, filename extension second. Supported:
// PDF, DOCX, and plain text. An unsupported format, unreadable bytes, or an
// empty result all fail with *ExtractionError.
func ExtractText(filename, mediaType string, data []byte) (string, error) {
	var text string
	var err error

	switch resolveFormat(filename, mediaType) {
	case "pdf":
		text, err = extractPDF(data)
	case "docx":
		text, err = extractDocx(data)
	case "txt":
		text = string(data)
	default:
		return "", &ExtractionError{Source: filename, Message: "unsupported file format, only pdf/docx/txt are accepted"}
	}
	if err != nil {
		return "", &ExtractionError{Source: filename, Message: "unreadable file", Cause: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &ExtractionError{Source: filename, Message: "file contained no extractable text"}
	}
	return text, nil
}

// resolveFormat maps media type or extension to a handler key.
func resolveFormat(filename, mediaType string) string {
	switch mediaType {
	case "application/pdf":
		return "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "text/plain":
		return "txt"
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".txt", ".md":
		return "txt"
	}
	return ""
}

// extractPDF pulls plain text from every page of a PDF.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocx pulls the document body text out of a DOCX archive. The
// library returns the raw document XML, so paragraph boundaries become
// newlines before tags are stripped.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	return xmlTagRe.ReplaceAllString(content, " "), nil
}

// CleanText normalizes extracted text: line endings to LF, non-breaking
// spaces to plain spaces, inline whitespace runs collapsed, and blank-line
// runs reduced to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")
	content = inlineWSRe.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	content = strings.Join(lines, "\n")
	content = blankLinesRe.ReplaceAllString(content, "\n")

	return strings.TrimSpace(content)
}
