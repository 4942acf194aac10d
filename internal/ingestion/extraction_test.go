package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("resume.pdf"))
	assert.True(t, IsSupported("resume.DOCX"))
	assert.True(t, IsSupported("resume.txt"))
	assert.False(t, IsSupported("resume.doc"))
	assert.False(t, IsSupported("resume.png"))
	assert.False(t, IsSupported("resume"))
}

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nGo engineer"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", text)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	_, err := ExtractText("resume.odt")

	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, ".odt", ufe.Extension)
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExtractTextFromBytes_TxtPassthrough(t *testing.T) {
	text, err := ExtractTextFromBytes([]byte("hello"), ".TXT")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractTextFromBytes_CorruptPDF(t *testing.T) {
	_, err := ExtractTextFromBytes([]byte("not a pdf"), ".pdf")

	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "PDF", ee.Format)
	assert.Error(t, ee.Unwrap())
}

func TestExtractTextFromBytes_CorruptDOCX(t *testing.T) {
	_, err := ExtractTextFromBytes([]byte("not a zip archive"), ".docx")

	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "DOCX", ee.Format)
}

func TestStripDocxTags(t *testing.T) {
	content := `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p>`
	assert.Equal(t, "First paragraph\nSecond\n", stripDocxTags(content))
}
