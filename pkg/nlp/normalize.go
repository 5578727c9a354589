package nlp

import (
	"regexp"
	"strings"
)

var (
	rePunct  = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// NormalizeText приводит текст к упрощённому виду для извлечения ключевых слов:
// - нижний регистр
// - удаляет пунктуацию (буквы, цифры и "_" остаются)
// - схлопывает пробелы
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = rePunct.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits normalized text on single spaces.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
