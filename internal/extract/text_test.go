package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunle-oseni/resume-ingest/internal/common"
)

func TestExtractTxtPassthrough(t *testing.T) {
	e := NewDocumentExtractor(nil)

	res, err := e.Extract(context.Background(), "resume.txt", []byte("Jane Doe\n\nSkills\nGo, Python\n"))
	require.NoError(t, err)
	assert.Equal(t, "TXT", res.Format)
	assert.Equal(t, "txt-passthrough", res.Method)
	// single blank lines survive as paragraph boundaries
	assert.Equal(t, "Jane Doe\n\nSkills\nGo, Python", res.Text)
}

func TestExtractTxtInvalidUTF8(t *testing.T) {
	e := NewDocumentExtractor(nil)

	_, err := e.Extract(context.Background(), "resume.txt", []byte{0xff, 0xfe, 0xfd})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedDocument)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewDocumentExtractor(nil)

	_, err := e.Extract(context.Background(), "resume.png", []byte("data"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedDocument)
	assert.False(t, common.Retryable(err))
}

func TestExtractDocx(t *testing.T) {
	e := NewDocumentExtractor(nil)

	docXML := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDocx(t, docXML)

	res, err := e.Extract(context.Background(), "resume.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "DOCX", res.Format)

	var lines []string
	for _, l := range strings.Split(res.Text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	assert.Equal(t, []string{"Jane Doe", "Software Engineer"}, lines)
}

func TestExtractDocxMissingDocument(t *testing.T) {
	e := NewDocumentExtractor(nil)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = e.Extract(context.Background(), "resume.docx", buf.Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedDocument)
}

func TestExtractPDFGarbage(t *testing.T) {
	e := NewDocumentExtractor(nil)

	_, err := e.Extract(context.Background(), "resume.pdf", []byte("not a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedDocument)
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
