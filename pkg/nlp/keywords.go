package nlp

import "sort"

// DefaultTopN — сколько самых частых слов попадает в набор помимо словарных.
const DefaultTopN = 30

// KeywordExtractor turns free text into an ordered, deduplicated keyword set.
type KeywordExtractor struct {
	Vocab *Vocabulary
	TopN  int
}

// NewKeywordExtractor returns an extractor over the default vocabulary.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{Vocab: DefaultVocabulary, TopN: DefaultTopN}
}

// ExtractKeywords uses the default extractor.
func ExtractKeywords(text string) []string {
	return NewKeywordExtractor().Extract(text)
}

// Extract returns vocabulary hits in order of appearance, then the TopN most
// frequent remaining words, then qualifying 2-3 word phrases.
func (e *KeywordExtractor) Extract(text string) []string {
	tokens := Tokenize(NormalizeText(text))

	var (
		filtered []string
		order    []string
		freq     = map[string]int{}
	)
	for _, t := range tokens {
		if e.Vocab.IsStopWord(t) || len([]rune(t)) < 3 {
			continue
		}
		filtered = append(filtered, t)
		if freq[t] == 0 {
			order = append(order, t)
		}
		freq[t]++
	}

	set := newOrderedSet()
	for _, t := range filtered {
		if e.Vocab.IsTerm(t) {
			set.add(t)
		}
	}

	// sort.SliceStable сохраняет порядок первого появления при равной частоте
	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool { return freq[ranked[i]] > freq[ranked[j]] })
	if len(ranked) > e.TopN {
		ranked = ranked[:e.TopN]
	}
	for _, t := range ranked {
		set.add(t)
	}

	for _, p := range e.phrases(tokens) {
		set.add(p)
	}
	return set.items
}

// phrases scans sliding 2- and 3-word windows over the unfiltered tokens.
// A 3-word window must be a vocabulary phrase; a 2-word window qualifies when
// it is a vocabulary phrase or either of its words is a term, so stop words
// next to a term ("with aws") are kept too.
func (e *KeywordExtractor) phrases(tokens []string) []string {
	var out []string
	for i := range tokens {
		if i+1 < len(tokens) {
			a, b := tokens[i], tokens[i+1]
			p := a + " " + b
			if e.Vocab.IsTerm(p) || e.Vocab.IsTerm(a) || e.Vocab.IsTerm(b) {
				out = append(out, p)
			}
		}
		if i+2 < len(tokens) {
			p := tokens[i] + " " + tokens[i+1] + " " + tokens[i+2]
			if e.Vocab.IsTerm(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}, items: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
