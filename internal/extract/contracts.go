package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: document bytes -> plain text.
type TextExtractor interface {
	Extract(ctx context.Context, documentRef string, data []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Format   string // "PDF" | "DOCX" | "TXT"
	Method   string // "pdf-text" | "docx-xml" | "txt-passthrough"
	Duration time.Duration
}
