// parse-resume runs the extraction stages offline against a file on disk and
// prints the structured profile as JSON. Useful for tuning the heuristic
// engine against real résumés without a database or queue.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/kunle-oseni/resume-ingest/internal/extract"
	"github.com/kunle-oseni/resume-ingest/internal/parser"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: parse-resume <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	textExtractor := extract.NewDocumentExtractor(logger)
	res, err := textExtractor.Extract(ctx, path, data)
	if err != nil {
		logger.Error("extract text", "path", path, "error", err)
		os.Exit(1)
	}

	profile := parser.Parse(res.Text)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		logger.Error("encode profile", "error", err)
		os.Exit(1)
	}
}
