package constants

import "strings"

// DocumentFormats holds the allowed document formats for résumé uploads.
var DocumentFormats = []string{"PDF", "DOCX", "TXT"}

// AllowedExtensions holds the default allowed file extensions for résumé ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its canonical document format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "docx":
		return "DOCX"
	case "txt":
		return "TXT"
	default:
		return ""
	}
}
