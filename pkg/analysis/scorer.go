package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/artem13815/atsmatch/pkg/llm"
	"github.com/artem13815/atsmatch/pkg/nlp"
)

const scorerSystemPrompt = `You are a professional resume analyzer. You will analyze a resume against a job description and provide detailed, actionable feedback.
For each resume and job description pair, provide:

1. Scores (integers from 0 to 100): overallScore, skillsScore, experienceScore, formatScore.
2. keyFindings: 5-6 items {"text": string, "type": "positive"|"negative"}.
3. keywordAnalysis: {"found": string[], "missing": string[], "partial": string[],
   "density": [{"keyword": string, "jobCount": int, "resumeCount": int, "match": "Great"|"Good"|"Partial"|"Missing"}]}.
4. detailedFeedback: {"overall", "skills", "experience", "education", "format"} as HTML strings,
   plus "summaryRevision": {"current": string, "improved": string} if the resume has a professional summary.

Respond with a single JSON object and nothing else. Use HTML for formatting in text fields.`

// LLMScorer asks a chat model for the assessment and accepts only replies
// that match the expected JSON shape.
type LLMScorer struct {
	model    llm.ChatModel
	maxChars int
	schema   *gojsonschema.Schema
}

// NewLLMScorer — maxChars ограничивает длину текста резюме в промпте (0 — без ограничения).
func NewLLMScorer(model llm.ChatModel, maxChars int) (*LLMScorer, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(assessmentSchema))
	if err != nil {
		return nil, fmt.Errorf("load assessment schema: %w", err)
	}
	return &LLMScorer{model: model, maxChars: maxChars, schema: schema}, nil
}

func (s *LLMScorer) Score(ctx context.Context, resumeText, jobDescription string) (Assessment, error) {
	user := fmt.Sprintf("Resume:\n\"\"\"\n%s\n\"\"\"\n\nJob Description:\n\"\"\"\n%s\n\"\"\"\n\nPlease analyze the resume against this job description.",
		truncateRunes(resumeText, s.maxChars), jobDescription)

	raw, err := s.model.Ask(ctx, scorerSystemPrompt, user)
	if err != nil {
		return Assessment{}, fmt.Errorf("ask model: %w", err)
	}
	return s.parse(raw)
}

var ErrMalformedAssessment = errors.New("malformed assessment")

func (s *LLMScorer) parse(raw string) (Assessment, error) {
	payload, ok := extractJSONObject(raw)
	if !ok {
		return Assessment{}, fmt.Errorf("%w: no JSON object in reply", ErrMalformedAssessment)
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil {
		return Assessment{}, fmt.Errorf("%w: %v", ErrMalformedAssessment, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return Assessment{}, fmt.Errorf("%w: %s", ErrMalformedAssessment, strings.Join(msgs, "; "))
	}

	var w wireAssessment
	if err := json.Unmarshal([]byte(payload), &w); err != nil {
		return Assessment{}, fmt.Errorf("%w: %v", ErrMalformedAssessment, err)
	}
	return w.toAssessment(), nil
}

// wireAssessment — ответ модели как есть: оценки могут прийти дробными.
type wireAssessment struct {
	OverallScore     float64              `json:"overallScore"`
	SkillsScore      float64              `json:"skillsScore"`
	ExperienceScore  float64              `json:"experienceScore"`
	FormatScore      float64              `json:"formatScore"`
	KeyFindings      []KeyFinding         `json:"keyFindings"`
	KeywordAnalysis  *nlp.KeywordAnalysis `json:"keywordAnalysis"`
	DetailedFeedback DetailedFeedback     `json:"detailedFeedback"`
}

func (w wireAssessment) toAssessment() Assessment {
	a := Assessment{
		OverallScore:     int(math.Round(w.OverallScore)),
		SkillsScore:      int(math.Round(w.SkillsScore)),
		ExperienceScore:  int(math.Round(w.ExperienceScore)),
		FormatScore:      int(math.Round(w.FormatScore)),
		KeyFindings:      w.KeyFindings,
		KeywordAnalysis:  w.KeywordAnalysis,
		DetailedFeedback: w.DetailedFeedback,
	}
	if ka := a.KeywordAnalysis; ka != nil {
		ensureSlices(ka)
	}
	return a
}

func ensureSlices(ka *nlp.KeywordAnalysis) {
	if ka.Found == nil {
		ka.Found = []string{}
	}
	if ka.Missing == nil {
		ka.Missing = []string{}
	}
	if ka.Partial == nil {
		ka.Partial = []string{}
	}
	if ka.Density == nil {
		ka.Density = []nlp.DensityRow{}
	}
}

// extractJSONObject strips code fences and returns the text between the first
// '{' and the last '}'.
func extractJSONObject(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	i := strings.Index(raw, "{")
	j := strings.LastIndex(raw, "}")
	if i < 0 || j <= i {
		return "", false
	}
	return raw[i : j+1], true
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

const assessmentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overallScore", "skillsScore", "experienceScore", "formatScore", "keyFindings", "detailedFeedback"],
  "definitions": {
    "score": {"type": "number", "minimum": 0, "maximum": 100},
    "strings": {"type": "array", "items": {"type": "string"}}
  },
  "properties": {
    "overallScore": {"$ref": "#/definitions/score"},
    "skillsScore": {"$ref": "#/definitions/score"},
    "experienceScore": {"$ref": "#/definitions/score"},
    "formatScore": {"$ref": "#/definitions/score"},
    "keyFindings": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["text", "type"],
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "type": {"enum": ["positive", "negative"]}
        }
      }
    },
    "keywordAnalysis": {
      "type": ["object", "null"],
      "required": ["found", "missing", "partial", "density"],
      "properties": {
        "found": {"$ref": "#/definitions/strings"},
        "missing": {"$ref": "#/definitions/strings"},
        "partial": {"$ref": "#/definitions/strings"},
        "density": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["keyword", "jobCount", "resumeCount", "match"],
            "properties": {
              "keyword": {"type": "string"},
              "jobCount": {"type": "integer", "minimum": 0},
              "resumeCount": {"type": "integer", "minimum": 0},
              "match": {"enum": ["Great", "Good", "Partial", "Missing"]}
            }
          }
        }
      }
    },
    "detailedFeedback": {
      "type": "object",
      "required": ["overall", "skills", "experience", "education", "format"],
      "properties": {
        "overall": {"type": "string"},
        "skills": {"type": "string"},
        "experience": {"type": "string"},
        "education": {"type": "string"},
        "format": {"type": "string"},
        "summaryRevision": {
          "type": ["object", "null"],
          "required": ["current", "improved"],
          "properties": {
            "current": {"type": "string"},
            "improved": {"type": "string"}
          }
        }
      }
    }
  }
}`
