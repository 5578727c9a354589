package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromName(t *testing.T) {
	tests := map[string]Format{
		"cv.pdf":        FormatPDF,
		"CV.PDF":        FormatPDF,
		"old.doc":       FormatDOC,
		"new.Docx":      FormatDOCX,
		"notes.txt":     FormatUnknown,
		"no-extension":  FormatUnknown,
		"archive.pdf.x": FormatUnknown,
	}
	for name, want := range tests {
		assert.Equal(t, want, FormatFromName(name), name)
	}
}

func TestPDFLowConfidenceKeepsPartialText(t *testing.T) {
	ext := PDFExtractor{}.Extract([]byte("BT (Hi) ET"))

	assert.Equal(t, StatusLowConfidence, ext.Status)
	assert.Equal(t, NoticePDFLowText+"\n\n(Hi)", ext.Text)
	assert.True(t, ext.Unusable())
}

func TestPDFByteScan(t *testing.T) {
	data := []byte("%PDF-1.4\nBT\n/F1 12 Tf (Senior Go developer with Kubernetes and PostgreSQL experience) Tj\nET\n%%EOF")

	ext := PDFExtractor{}.Extract(data)

	require.Equal(t, StatusOK, ext.Status)
	assert.Contains(t, ext.Text, "Senior Go developer with Kubernetes and PostgreSQL experience")
	assert.False(t, ext.Unusable())
}

func TestPDFUnterminatedBlockDropped(t *testing.T) {
	assert.Equal(t, "first", scanPDFTextBlocks([]byte("BT first ET BT second")))
}

func TestDOCScan(t *testing.T) {
	var data []byte
	data = append(data, docRun("Experienced project manager with agile delivery background")...)
	data = append(data, docRun("tiny")...)
	data = append(data, docRun("Scrum Master")...)

	ext := DOCExtractor{}.Extract(data)

	require.Equal(t, StatusOK, ext.Status)
	assert.Equal(t, "Experienced project manager with agile delivery background Scrum Master", ext.Text)
}

func TestDOCLowConfidenceIsNotUnusable(t *testing.T) {
	ext := DOCExtractor{}.Extract(docRun("short text"))

	assert.Equal(t, StatusLowConfidence, ext.Status)
	assert.Equal(t, NoticeDOCLowText+"\n\nshort text", ext.Text)
	assert.False(t, ext.Unusable())
}

func TestDOCXExtract(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>R&amp;D</w:t></w:r></w:p>`)

	ext := DOCXExtractor{}.Extract(data)

	require.Equal(t, StatusOK, ext.Status)
	assert.Equal(t, "Jane Doe\nGo R&D", ext.Text)
}

func TestDOCXCorruptContainer(t *testing.T) {
	ext := NewParser().Extract([]byte{}, FormatDOCX)

	assert.Equal(t, NoticeDOCXCorrupt, ext.Text)
	assert.Equal(t, StatusDegraded, ext.Status)
	var xerr *ExtractionError
	require.ErrorAs(t, ext.Err, &xerr)
	assert.Equal(t, FormatDOCX, xerr.Format)
	assert.False(t, ext.Unusable())
}

func TestParserEmptyDocument(t *testing.T) {
	ext := NewParser().Extract(buildDocx(t, ""), FormatDOCX)

	assert.Equal(t, NoticeEmpty, ext.Text)
	assert.True(t, ext.Unusable())
}

func TestParserUnsupported(t *testing.T) {
	ext := NewParser().Extract([]byte("hello"), FormatUnknown)

	assert.Equal(t, NoticeUnsupported, ext.Text)
	assert.ErrorIs(t, ext.Err, ErrUnsupportedFormat)
}

type panicky struct{}

func (panicky) Format() Format            { return FormatPDF }
func (panicky) Extract([]byte) Extraction { panic("boom") }

func TestParserRecoversFromPanic(t *testing.T) {
	ext := NewParser(panicky{}).Extract([]byte("x"), FormatPDF)

	assert.Equal(t, NoticePDFUnreadable, ext.Text)
	assert.True(t, ext.Unusable())
}

func TestExtractionNeverEmpty(t *testing.T) {
	inputs := [][]byte{nil, {0}, {0, 0, 0, 0}, []byte("BT"), []byte("ET"), []byte("PK\x03\x04garbage"), bytes255()}
	p := NewParser()
	for _, f := range []Format{FormatPDF, FormatDOC, FormatDOCX, FormatUnknown} {
		for _, in := range inputs {
			ext := p.Extract(in, f)
			assert.NotEmpty(t, ext.Text, "format %q input %v", f, in)
		}
	}
}

func bytes255() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestExtractFileMissing(t *testing.T) {
	ext := NewParser().ExtractFile(filepath.Join(t.TempDir(), "gone.pdf"), FormatPDF)

	assert.Equal(t, NoticePDFUnreadable, ext.Text)
	assert.True(t, errors.Is(ext.Err, os.ErrNotExist))
}

func TestExtractionServiceRemovesTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.doc")
	require.NoError(t, os.WriteFile(path, docRun("Experienced project manager with agile delivery background"), 0o600))

	ext := NewExtractionService(nil).Extract(context.Background(), Upload{FileName: "cv.doc", Path: path})

	assert.Equal(t, StatusOK, ext.Status)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
