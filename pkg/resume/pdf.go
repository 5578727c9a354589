package resume

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// PDFExtractor reads text with a real PDF parser first and falls back to a
// BT/ET byte scan. The scan is an approximation, not a conforming parser.
type PDFExtractor struct{}

func (PDFExtractor) Format() Format { return FormatPDF }

func (PDFExtractor) Extract(data []byte) Extraction {
	structured, _ := readPDFStructured(data)
	if charCount(structured) >= MinTextChars {
		return Extraction{Format: FormatPDF, Text: structured, Status: StatusOK}
	}

	scanned := scanPDFTextBlocks(data)
	if charCount(scanned) >= MinTextChars {
		return Extraction{Format: FormatPDF, Text: scanned, Status: StatusOK}
	}

	partial := scanned
	if charCount(structured) > charCount(scanned) {
		partial = structured
	}
	return Extraction{
		Format: FormatPDF,
		Text:   withNotice(NoticePDFLowText, partial),
		Status: StatusLowConfidence,
		Err:    ErrEmptyText,
	}
}

func readPDFStructured(data []byte) (text string, err error) {
	// ledongthuc/pdf паникует на части битых файлов
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
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

// scanPDFTextBlocks collects printable ASCII between "BT" and "ET" markers.
// The byte right after a marker is its separator and is skipped.
// A block left open at the end of the stream is dropped.
func scanPDFTextBlocks(data []byte) string {
	var (
		out     strings.Builder
		current strings.Builder
		inText  bool
	)
	for i := 0; i < len(data); i++ {
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}
		switch {
		case data[i] == 'B' && next == 'T':
			inText = true
			i += 2
		case data[i] == 'E' && next == 'T':
			inText = false
			out.WriteString(current.String())
			out.WriteByte(' ')
			current.Reset()
			i += 2
		case inText && data[i] >= 32 && data[i] <= 126:
			current.WriteByte(data[i])
		}
	}
	return cleanASCII(out.String())
}
