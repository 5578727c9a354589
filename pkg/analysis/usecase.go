package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artem13815/atsmatch/pkg/logger"
	"github.com/artem13815/atsmatch/pkg/nlp"
	"github.com/artem13815/atsmatch/pkg/resume"
)

// Submission — один запрос на анализ. FilePath указывает на временный файл,
// который сервис удаляет сразу после извлечения текста.
type Submission struct {
	FileName       string
	FilePath       string
	JobDescription string
}

// Result keeps the degradations behind a stored record visible to callers.
type Result struct {
	Record     Record
	Extraction resume.Extraction
	Keywords   Outcome[nlp.KeywordAnalysis]
	Assessment Outcome[Assessment]
}

// TextExtractor reads a resume file into text.
type TextExtractor interface {
	ExtractFile(path string, format resume.Format) resume.Extraction
}

// UseCase — сценарии анализа резюме относительно описания вакансии.
type UseCase interface {
	Analyze(ctx context.Context, sub Submission) (Result, error)
	Get(ctx context.Context, id int64) (Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
}

type service struct {
	repo         Repository
	extractor    TextExtractor
	matcher      Matcher
	scorer       Scorer
	scoreTimeout time.Duration
	now          func() time.Time
}

// NewService wires the pipeline. scorer may be nil: every report then uses the
// fallback assessment. scoreTimeout <= 0 disables the scoring deadline.
func NewService(repo Repository, extractor TextExtractor, matcher Matcher, scorer Scorer, scoreTimeout time.Duration) UseCase {
	return &service{
		repo:         repo,
		extractor:    extractor,
		matcher:      matcher,
		scorer:       scorer,
		scoreTimeout: scoreTimeout,
		now:          time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, sub Submission) (Result, error) {
	log := logger.Ctx(ctx).With().Str("file", sub.FileName).Logger()
	log.Debug().Str("stage", string(StageReceived)).Msg("analysis stage")

	jobDescription := strings.TrimSpace(sub.JobDescription)
	if jobDescription == "" {
		resume.RemoveTemp(ctx, sub.FilePath)
		return Result{}, s.fail(&log, StageReceived, ErrEmptyJobDescription)
	}

	var res Result

	log.Debug().Str("stage", string(StageExtracting)).Msg("analysis stage")
	res.Extraction = s.extract(ctx, sub)
	if res.Extraction.Status != resume.StatusOK {
		log.Warn().
			Err(res.Extraction.Err).
			Str("format", string(res.Extraction.Format)).
			Str("status", string(res.Extraction.Status)).
			Int("text_len", len(res.Extraction.Text)).
			Msg("resume extraction degraded")
	}
	if res.Extraction.Unusable() {
		return res, s.fail(&log, StageExtracting, ErrInsufficientText)
	}
	resumeText := res.Extraction.Text

	log.Debug().Str("stage", string(StageMatching)).Msg("analysis stage")
	res.Keywords = s.match(jobDescription, resumeText)
	if res.Keywords.Degraded() {
		log.Warn().
			Str("reason", string(res.Keywords.Reason)).
			Int("resume_len", len(resumeText)).
			Int("job_len", len(jobDescription)).
			Msg("keyword matching failed, using empty analysis")
	}

	log.Debug().Str("stage", string(StageScoring)).Msg("analysis stage")
	res.Assessment = s.score(ctx, resumeText, jobDescription)
	if res.Assessment.Degraded() {
		log.Warn().
			Str("reason", string(res.Assessment.Reason)).
			Int("resume_len", len(resumeText)).
			Int("job_len", len(jobDescription)).
			Msg("scoring unavailable, using fallback report")
	}

	report := Merge(res.Assessment.Value, res.Keywords.Value, s.now())
	log.Debug().Str("stage", string(StageMerged)).Int("overall_score", report.OverallScore).Msg("analysis stage")

	rec, err := s.repo.Create(ctx, resumeText, jobDescription, report)
	if err != nil {
		return res, s.fail(&log, StageStored, err)
	}
	res.Record = rec
	log.Debug().Str("stage", string(StageStored)).Int64("id", rec.ID).Msg("analysis stage")
	return res, nil
}

func (s *service) Get(ctx context.Context, id int64) (Record, error) {
	return s.repo.GetByID(ctx, id)
}

// List pages over ListAll; limit <= 0 means no limit.
func (s *service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []Record{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *service) extract(ctx context.Context, sub Submission) resume.Extraction {
	defer resume.RemoveTemp(ctx, sub.FilePath)
	return s.extractor.ExtractFile(sub.FilePath, resume.FormatFromName(sub.FileName))
}

func (s *service) match(jobDescription, resumeText string) (out Outcome[nlp.KeywordAnalysis]) {
	defer func() {
		if r := recover(); r != nil {
			out = Degrade(nlp.EmptyKeywordAnalysis(), ReasonMatchingFailed)
		}
	}()
	return Ok(s.matcher.Match(jobDescription, resumeText))
}

func (s *service) score(ctx context.Context, resumeText, jobDescription string) (out Outcome[Assessment]) {
	if s.scorer == nil {
		return Degrade(FallbackAssessment(), ReasonScoringUnavailable)
	}
	defer func() {
		if r := recover(); r != nil {
			out = Degrade(FallbackAssessment(), ReasonScoringFailed)
		}
	}()

	if s.scoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.scoreTimeout)
		defer cancel()
	}
	a, err := s.scorer.Score(ctx, resumeText, jobDescription)
	switch {
	case err == nil:
		return Ok(a)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Ctx(ctx).Debug().Err(err).Msg("scoring timed out")
		return Degrade(FallbackAssessment(), ReasonScoringTimeout)
	default:
		logger.Ctx(ctx).Debug().Err(err).Msg("scoring failed")
		return Degrade(FallbackAssessment(), ReasonScoringFailed)
	}
}

func (s *service) fail(log *zerolog.Logger, stage Stage, err error) error {
	log.Error().Err(err).Str("stage", string(stage)).Msg("analysis failed")
	return &StageError{Stage: stage, Err: err}
}

// Merge builds the final report. A keyword analysis returned by the scorer
// replaces the local one wholesale.
func Merge(a Assessment, local nlp.KeywordAnalysis, at time.Time) Report {
	keywords := local
	if a.KeywordAnalysis != nil {
		keywords = *a.KeywordAnalysis
	}

	findings := make([]KeyFinding, 0, len(a.KeyFindings))
	for _, f := range a.KeyFindings {
		if f.Type != FindingPositive {
			f.Type = FindingNegative
		}
		findings = append(findings, f)
	}

	return Report{
		OverallScore:     clampScore(a.OverallScore),
		SkillsScore:      clampScore(a.SkillsScore),
		ExperienceScore:  clampScore(a.ExperienceScore),
		FormatScore:      clampScore(a.FormatScore),
		KeyFindings:      findings,
		KeywordAnalysis:  keywords,
		DetailedFeedback: a.DetailedFeedback,
		Timestamp:        at.UnixMilli(),
	}
}

func clampScore(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// String is used in CLI output.
func (r Result) String() string {
	return fmt.Sprintf("analysis #%d: overall %d%% (keywords: %s, scoring: %s)",
		r.Record.ID, r.Record.Result.OverallScore, reasonOrOK(r.Keywords.Reason), reasonOrOK(r.Assessment.Reason))
}

func reasonOrOK(r Reason) string {
	if r == "" {
		return "ok"
	}
	return string(r)
}
