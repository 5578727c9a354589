package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	reply     string
	err       error
	gotSystem string
	gotUser   string
}

func (m *stubModel) Ask(_ context.Context, system, user string) (string, error) {
	m.gotSystem, m.gotUser = system, user
	return m.reply, m.err
}

const validReply = `{
  "overallScore": 78.6,
  "skillsScore": 80,
  "experienceScore": 70,
  "formatScore": 90,
  "keyFindings": [
    {"text": "Strong <span class=\"font-medium\">React</span> background", "type": "positive"},
    {"text": "No Docker", "type": "negative"}
  ],
  "keywordAnalysis": {
    "found": ["react"],
    "missing": ["docker"],
    "partial": [],
    "density": [{"keyword": "react", "jobCount": 1, "resumeCount": 2, "match": "Great"}]
  },
  "detailedFeedback": {
    "overall": "<p>Good</p>",
    "skills": "<p>Skills</p>",
    "experience": "<p>Exp</p>",
    "education": "<p>Edu</p>",
    "format": "<p>Fmt</p>",
    "summaryRevision": {"current": "Dev", "improved": "Senior React developer"}
  }
}`

func newScorer(t *testing.T, m *stubModel, maxChars int) *LLMScorer {
	t.Helper()
	s, err := NewLLMScorer(m, maxChars)
	require.NoError(t, err)
	return s
}

func TestLLMScorerParsesReply(t *testing.T) {
	m := &stubModel{reply: "```json\n" + validReply + "\n```"}

	a, err := newScorer(t, m, 0).Score(context.Background(), "resume body", "job body")
	require.NoError(t, err)

	assert.Equal(t, 79, a.OverallScore)
	assert.Equal(t, 90, a.FormatScore)
	require.Len(t, a.KeyFindings, 2)
	assert.Equal(t, FindingNegative, a.KeyFindings[1].Type)
	require.NotNil(t, a.KeywordAnalysis)
	assert.Equal(t, []string{"docker"}, a.KeywordAnalysis.Missing)
	require.NotNil(t, a.DetailedFeedback.SummaryRevision)
	assert.Equal(t, "Senior React developer", a.DetailedFeedback.SummaryRevision.Improved)
	assert.Contains(t, m.gotUser, "resume body")
	assert.Contains(t, m.gotUser, "job body")
}

func TestLLMScorerKeywordAnalysisOptional(t *testing.T) {
	reply := strings.Replace(validReply, `"keywordAnalysis"`, `"unusedKeywords"`, 1)

	a, err := newScorer(t, &stubModel{reply: reply}, 0).Score(context.Background(), "r", "j")
	require.NoError(t, err)
	assert.Nil(t, a.KeywordAnalysis)
}

func TestLLMScorerSummaryRevisionOptional(t *testing.T) {
	replies := map[string]string{
		"null":    strings.Replace(validReply, `{"current": "Dev", "improved": "Senior React developer"}`, `null`, 1),
		"omitted": strings.Replace(validReply, `,
    "summaryRevision": {"current": "Dev", "improved": "Senior React developer"}`, ``, 1),
	}
	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			a, err := newScorer(t, &stubModel{reply: reply}, 0).Score(context.Background(), "r", "j")
			require.NoError(t, err)
			assert.Nil(t, a.DetailedFeedback.SummaryRevision)
			assert.Equal(t, "<p>Fmt</p>", a.DetailedFeedback.Format)
		})
	}
}

func TestLLMScorerRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":         "I cannot help with that.",
		"broken json":      `{"overallScore": 5,`,
		"score too high":   strings.Replace(validReply, `"skillsScore": 80`, `"skillsScore": 180`, 1),
		"missing feedback": strings.Replace(validReply, `"education": "<p>Edu</p>",`, ``, 1),
		"bad finding type": strings.Replace(validReply, `"type": "negative"`, `"type": "meh"`, 1),
		"missing score":    strings.Replace(validReply, `"formatScore": 90,`, ``, 1),
		"summary as text":  strings.Replace(validReply, `{"current": "Dev", "improved": "Senior React developer"}`, `"Dev"`, 1),
	}
	for name, reply := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newScorer(t, &stubModel{reply: reply}, 0).Score(context.Background(), "r", "j")
			assert.ErrorIs(t, err, ErrMalformedAssessment)
		})
	}
}

func TestLLMScorerPropagatesModelError(t *testing.T) {
	_, err := newScorer(t, &stubModel{err: errBoom}, 0).Score(context.Background(), "r", "j")
	assert.ErrorIs(t, err, errBoom)
}

func TestLLMScorerTruncatesResume(t *testing.T) {
	m := &stubModel{reply: validReply}
	_, err := newScorer(t, m, 5).Score(context.Background(), "абвгдежз", "job")
	require.NoError(t, err)

	assert.Contains(t, m.gotUser, "абвгд\n")
	assert.NotContains(t, m.gotUser, "абвгде")
}
