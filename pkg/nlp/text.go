package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountOccurrences считает вхождения keyword в text как целых слов без учёта регистра.
// Словом считаются буквы, цифры и "_"; "test" не найдётся в "testing".
func CountOccurrences(text, keyword string) int {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return 0
	}
	hay := strings.ToLower(text)

	n := 0
	for i := 0; i <= len(hay)-len(needle); {
		j := strings.Index(hay[i:], needle)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(needle)
		if boundaryBefore(hay, start) && boundaryAfter(hay, end) {
			n++
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(hay[start:])
		i = start + size
	}
	return n
}

// Contains reports a whole-word, case-insensitive hit of keyword in text.
func Contains(text, keyword string) bool {
	return CountOccurrences(text, keyword) > 0
}

// Similar — грубая замена стемминга: один термин содержится в другом.
// "go" похож на "goal"; это известная неточность.
func Similar(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}
