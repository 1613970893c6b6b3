package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"

	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/internal/common"
)

// DocumentExtractor converts raw résumé bytes into a flat text
// representation. Failures here mean the document itself is malformed, so
// every error wraps common.ErrUnsupportedDocument (permanent).
type DocumentExtractor struct {
	logger *slog.Logger
}

func NewDocumentExtractor(logger *slog.Logger) *DocumentExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentExtractor{logger: logger}
}

func (e *DocumentExtractor) Extract(ctx context.Context, documentRef string, data []byte) (TextExtractionResult, error) {
	start := time.Now()
	format := constants.MapExtToFormat(filepath.Ext(documentRef))

	var (
		text   string
		method string
		err    error
	)
	switch format {
	case "PDF":
		text, err = extractTextFromPDF(data)
		method = "pdf-text"
	case "DOCX":
		text, err = extractTextFromDocx(data)
		method = "docx-xml"
	case "TXT":
		if !utf8.Valid(data) {
			err = common.NewAppError("EXTRACT_INVALID_UTF8", "text document is not valid UTF-8", common.ErrUnsupportedDocument)
		} else {
			text = normalizeWhitespace(string(data))
		}
		method = "txt-passthrough"
	default:
		e.logger.Error("extract.unsupported_format", "document_ref", documentRef, "ext", filepath.Ext(documentRef))
		return TextExtractionResult{}, common.NewAppError("EXTRACT_UNSUPPORTED", "unsupported document format", common.ErrUnsupportedDocument)
	}
	if err != nil {
		e.logger.Error("extract.failed", "document_ref", documentRef, "format", format, "error", err)
		return TextExtractionResult{}, common.NewAppError("EXTRACT_FAILED", "extract text from "+format, common.ErrUnsupportedDocument)
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("extract.empty_text", "document_ref", documentRef, "format", format)
	}

	return TextExtractionResult{
		Text:     text,
		Format:   format,
		Method:   method,
		Duration: time.Since(start),
	}, nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", common.ErrUnsupportedDocument
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines before stripping tags.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
)

// normalizeWhitespace collapses space runs but keeps single blank lines:
// downstream structuring treats a blank line as a paragraph boundary.
func normalizeWhitespace(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
