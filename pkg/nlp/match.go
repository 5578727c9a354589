package nlp

import "sort"

// Grade — качественная оценка совпадения ключевого слова.
type Grade string

const (
	GradeGreat   Grade = "Great"
	GradeGood    Grade = "Good"
	GradePartial Grade = "Partial"
	GradeMissing Grade = "Missing"
)

// DensityLimit caps the density table; the buckets are never truncated.
const DensityLimit = 10

// DensityRow compares how often a job keyword is mentioned in both texts.
type DensityRow struct {
	Keyword     string `json:"keyword"`
	JobCount    int    `json:"jobCount"`
	ResumeCount int    `json:"resumeCount"`
	Match       Grade  `json:"match"`
}

// KeywordAnalysis — результат сравнения ключевых слов вакансии с резюме.
// Каждое ключевое слово вакансии лежит ровно в одном из Found/Missing/Partial.
type KeywordAnalysis struct {
	Found   []string     `json:"found"`
	Missing []string     `json:"missing"`
	Partial []string     `json:"partial"`
	Density []DensityRow `json:"density"`
}

// EmptyKeywordAnalysis has all four views present and empty.
func EmptyKeywordAnalysis() KeywordAnalysis {
	return KeywordAnalysis{
		Found:   []string{},
		Missing: []string{},
		Partial: []string{},
		Density: []DensityRow{},
	}
}

// Matcher classifies job keywords against a resume.
type Matcher struct {
	Keywords *KeywordExtractor
}

func NewMatcher() *Matcher {
	return &Matcher{Keywords: NewKeywordExtractor()}
}

// Match extracts keywords from both texts and buckets every job keyword.
func (m *Matcher) Match(jobText, resumeText string) KeywordAnalysis {
	jobKeywords := m.Keywords.Extract(jobText)
	resumeKeywords := m.Keywords.Extract(resumeText)

	out := EmptyKeywordAnalysis()
	density := make([]DensityRow, 0, len(jobKeywords))

	for _, k := range jobKeywords {
		jobCount := CountOccurrences(jobText, k)
		resumeCount := CountOccurrences(resumeText, k)

		if resumeCount > 0 {
			out.Found = append(out.Found, k)
			density = append(density, DensityRow{Keyword: k, JobCount: jobCount, ResumeCount: resumeCount, Match: grade(jobCount, resumeCount)})
			continue
		}

		if r, ok := firstSimilar(k, resumeKeywords); ok {
			out.Partial = append(out.Partial, k)
			density = append(density, DensityRow{Keyword: k, JobCount: jobCount, ResumeCount: CountOccurrences(resumeText, r), Match: GradePartial})
			continue
		}

		out.Missing = append(out.Missing, k)
		density = append(density, DensityRow{Keyword: k, JobCount: jobCount, ResumeCount: 0, Match: GradeMissing})
	}

	sort.SliceStable(density, func(i, j int) bool { return density[i].JobCount > density[j].JobCount })
	if len(density) > DensityLimit {
		density = density[:DensityLimit]
	}
	out.Density = density
	return out
}

func grade(jobCount, resumeCount int) Grade {
	switch {
	case resumeCount >= jobCount:
		return GradeGreat
	case float64(resumeCount) >= float64(jobCount)*0.5:
		return GradeGood
	default:
		return GradePartial
	}
}

func firstSimilar(keyword string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if Similar(keyword, c) {
			return c, true
		}
	}
	return "", false
}
