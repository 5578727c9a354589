package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reNonPrintable = regexp.MustCompile(`[^\x20-\x7E\n]`)
	reAnySpace     = regexp.MustCompile(`\s+`)
	reHSpace       = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines     = regexp.MustCompile(`\n+`)
	reXMLTags      = regexp.MustCompile(`<[^>]+>`)
)

// cleanASCII оставляет только печатный ASCII и схлопывает все пробелы в один.
func cleanASCII(s string) string {
	s = reNonPrintable.ReplaceAllString(s, " ")
	s = reAnySpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reHSpace.ReplaceAllString(s, " ")
	// Preserve newlines but collapse runs
	s = strings.ReplaceAll(s, " \n", "\n")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// withNotice ставит заглушку перед частично извлечённым текстом.
func withNotice(notice, text string) string {
	if text == "" {
		return notice
	}
	return notice + "\n\n" + text
}

func charCount(s string) int { return utf8.RuneCountInString(s) }
