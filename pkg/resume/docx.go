package resume

import (
	"bytes"
	"html"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCXExtractor reads word/document.xml from the OOXML container.
type DOCXExtractor struct{}

func (DOCXExtractor) Format() Format { return FormatDOCX }

func (DOCXExtractor) Extract(data []byte) Extraction {
	text, err := readDocx(data)
	if err != nil {
		return Extraction{
			Format: FormatDOCX,
			Text:   NoticeDOCXCorrupt,
			Status: StatusDegraded,
			Err:    &ExtractionError{Format: FormatDOCX, Op: "read container", Err: err},
		}
	}
	return Extraction{Format: FormatDOCX, Text: text, Status: StatusOK}
}

func readDocx(data []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	return docxXMLToText(r.Editable().GetContent()), nil
}

var docxBreaks = strings.NewReplacer(
	"</w:p>", "\n",
	"<w:br/>", "\n",
	"<w:tab/>", "\t",
)

func docxXMLToText(xml string) string {
	xml = docxBreaks.Replace(xml)
	// runs одного слова идут соседними тегами, поэтому теги удаляем без пробела
	txt := reXMLTags.ReplaceAllString(xml, "")
	return normalizeWhitespace(html.UnescapeString(txt))
}
