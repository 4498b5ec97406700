package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"legibrief/internal/extract"
)

func TestPDFExtractor_MissingFile(t *testing.T) {
	e := extract.NewPDFExtractor()
	_, err := e.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestPDFExtractor_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	err := os.WriteFile(path, []byte("plain text, not a pdf"), 0o600)
	assert.NoError(t, err)

	e := extract.NewPDFExtractor()
	_, err = e.ExtractText(path)
	assert.Error(t, err)
}
