package resume

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format — тип загруженного документа.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOC     Format = "doc"
	FormatDOCX    Format = "docx"
	FormatUnknown Format = ""
)

// FormatFromName определяет формат по расширению файла.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".doc":
		return FormatDOC
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// Supported reports whether the format has an extractor.
func (f Format) Supported() bool {
	return f == FormatPDF || f == FormatDOC || f == FormatDOCX
}

// Status describes how much of the document could be recovered.
type Status string

const (
	StatusOK            Status = "ok"
	StatusLowConfidence Status = "low_confidence"
	StatusDegraded      Status = "degraded"
	StatusUnusable      Status = "unusable"
)

// Extraction — результат извлечения текста. Text никогда не пустой:
// при сбое вместо текста возвращается диагностическая заглушка в [...].
type Extraction struct {
	Format Format `json:"format"`
	Text   string `json:"text"`
	Status Status `json:"status"`
	Err    error  `json:"-"`
}

// Unusable is true when the text is not worth analysing: nothing could be read,
// or a PDF yielded only a low-confidence fragment.
func (e Extraction) Unusable() bool {
	if e.Status == StatusUnusable {
		return true
	}
	return e.Format == FormatPDF && e.Status == StatusLowConfidence
}

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyText         = errors.New("no text recovered")
)

// ExtractionError is returned inside Extraction.Err when a document container
// could not be opened, as opposed to a readable document with little text.
type ExtractionError struct {
	Format Format
	Op     string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s: %v", e.Format, e.Op, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Диагностические заглушки, которые уходят дальше по конвейеру вместо текста.
const (
	NoticePDFLowText    = "[This PDF contains text that couldn't be fully extracted. Please provide key details from the resume manually if needed.]"
	NoticePDFUnreadable = "[Unable to extract text from this PDF. The file may be image-based or secured.]"
	NoticeDOCXCorrupt   = "[There was a problem processing this DOCX file. The file may be corrupted or password-protected.]"
	NoticeDOCLowText    = "[The DOC file format could not be fully parsed. Please convert your resume to PDF or DOCX format for better results.]"
	NoticeDOCUnreadable = "[Unable to extract text from this DOC file. Please try converting it to PDF or DOCX format.]"
	NoticeUnsupported   = "[Unsupported file format. Please upload a PDF, DOC, or DOCX file.]"
	NoticeEmpty         = "[Unable to extract text from this file. The file may be empty, corrupted, or in an unsupported format.]"
	NoticeInternal      = "[An error occurred while processing your resume. Please try uploading a different file or format.]"
)

// MinTextChars — порог, ниже которого извлечение считается ненадёжным.
const MinTextChars = 50

// IsPlaceholder reports whether text is (or starts with) a diagnostic notice.
func IsPlaceholder(text string) bool {
	return strings.HasPrefix(text, "[")
}
