package resume

import (
	"fmt"
	"os"
	"strings"
)

// Extractor turns the bytes of one document format into text. Implementations
// must not fail: problems are reported through Extraction.Status and Err.
type Extractor interface {
	Format() Format
	Extract(data []byte) Extraction
}

// Parser dispatches documents to the extractor registered for their format.
type Parser struct {
	extractors map[Format]Extractor
}

// NewParser registers the given extractors, or PDF, DOC and DOCX when none are passed.
func NewParser(extractors ...Extractor) *Parser {
	if len(extractors) == 0 {
		extractors = []Extractor{PDFExtractor{}, DOCExtractor{}, DOCXExtractor{}}
	}
	p := &Parser{extractors: make(map[Format]Extractor, len(extractors))}
	for _, e := range extractors {
		p.extractors[e.Format()] = e
	}
	return p
}

var defaultParser = NewParser()

// ParseResumeText extracts plain text from supported resume formats.
// Supports: .pdf, .doc and .docx
func ParseResumeText(filename string, data []byte) Extraction {
	return defaultParser.Extract(data, FormatFromName(filename))
}

// Extract never panics and never returns empty text.
func (p *Parser) Extract(data []byte, format Format) (out Extraction) {
	defer func() {
		if r := recover(); r != nil {
			out = failure(format, fmt.Errorf("extractor panic: %v", r))
		}
	}()

	ex, ok := p.extractors[format]
	if !ok {
		return Extraction{Format: format, Text: NoticeUnsupported, Status: StatusDegraded, Err: ErrUnsupportedFormat}
	}
	out = ex.Extract(data)
	out.Format = format
	if strings.TrimSpace(out.Text) == "" {
		return Extraction{Format: format, Text: NoticeEmpty, Status: StatusUnusable, Err: ErrEmptyText}
	}
	return out
}

// ExtractFile reads the document at path. The file is left in place: whoever
// created it is responsible for removing it.
func (p *Parser) ExtractFile(path string, format Format) Extraction {
	if !format.Supported() {
		return p.Extract(nil, format)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return failure(format, &ExtractionError{Format: format, Op: "read file", Err: err})
	}
	return p.Extract(data, format)
}

// failure подбирает заглушку под формат, для которого извлечение сорвалось целиком.
func failure(format Format, err error) Extraction {
	switch format {
	case FormatPDF:
		return Extraction{Format: format, Text: NoticePDFUnreadable, Status: StatusUnusable, Err: err}
	case FormatDOC:
		return Extraction{Format: format, Text: NoticeDOCUnreadable, Status: StatusUnusable, Err: err}
	case FormatDOCX:
		return Extraction{Format: format, Text: NoticeDOCXCorrupt, Status: StatusDegraded, Err: err}
	default:
		return Extraction{Format: format, Text: NoticeInternal, Status: StatusDegraded, Err: err}
	}
}
