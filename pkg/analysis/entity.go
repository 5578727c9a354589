package analysis

import (
	"context"
	"time"

	"github.com/artem13815/atsmatch/pkg/nlp"
)

// FindingType — знак ключевого наблюдения.
type FindingType string

const (
	FindingPositive FindingType = "positive"
	FindingNegative FindingType = "negative"
)

type KeyFinding struct {
	Text string      `json:"text"`
	Type FindingType `json:"type"`
}

// SummaryRevision — текущий и улучшенный вариант раздела "о себе".
type SummaryRevision struct {
	Current  string `json:"current"`
	Improved string `json:"improved"`
}

// DetailedFeedback — пять текстовых разделов отзыва (HTML).
type DetailedFeedback struct {
	Overall         string           `json:"overall"`
	Skills          string           `json:"skills"`
	Experience      string           `json:"experience"`
	Education       string           `json:"education"`
	Format          string           `json:"format"`
	SummaryRevision *SummaryRevision `json:"summaryRevision,omitempty"`
}

// Assessment is what a scorer returns. KeywordAnalysis is nil when the scorer
// did not produce one.
type Assessment struct {
	OverallScore     int                  `json:"overallScore"`
	SkillsScore      int                  `json:"skillsScore"`
	ExperienceScore  int                  `json:"experienceScore"`
	FormatScore      int                  `json:"formatScore"`
	KeyFindings      []KeyFinding         `json:"keyFindings"`
	KeywordAnalysis  *nlp.KeywordAnalysis `json:"keywordAnalysis,omitempty"`
	DetailedFeedback DetailedFeedback     `json:"detailedFeedback"`
}

// Report — итоговый отчёт, который видит клиент. Timestamp в миллисекундах.
type Report struct {
	OverallScore     int                 `json:"overallScore"`
	SkillsScore      int                 `json:"skillsScore"`
	ExperienceScore  int                 `json:"experienceScore"`
	FormatScore      int                 `json:"formatScore"`
	KeyFindings      []KeyFinding        `json:"keyFindings"`
	KeywordAnalysis  nlp.KeywordAnalysis `json:"keywordAnalysis"`
	DetailedFeedback DetailedFeedback    `json:"detailedFeedback"`
	Timestamp        int64               `json:"timestamp"`
}

// Record — сохранённый анализ.
type Record struct {
	ID             int64     `json:"id"`
	ResumeText     string    `json:"resumeText"`
	JobDescription string    `json:"jobDescription"`
	Result         Report    `json:"result"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Repository — порт для сохранения/чтения анализов. Идентификаторы растут
// монотонно и не переиспользуются; ListAll отдаёт новые записи первыми.
type Repository interface {
	Create(ctx context.Context, resumeText, jobDescription string, report Report) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}

// Matcher compares a job description with resume text.
type Matcher interface {
	Match(jobText, resumeText string) nlp.KeywordAnalysis
}

// Scorer produces the qualitative assessment, usually through an LLM.
type Scorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) (Assessment, error)
}
