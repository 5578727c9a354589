package analysis

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/artem13815/atsmatch/pkg/nlp"
	"github.com/artem13815/atsmatch/pkg/resume"
)

type fakeExtractor struct {
	ext     resume.Extraction
	gotPath string
	gotFmt  resume.Format
}

func (f *fakeExtractor) ExtractFile(path string, format resume.Format) resume.Extraction {
	f.gotPath, f.gotFmt = path, format
	return f.ext
}

type panickingMatcher struct{}

func (panickingMatcher) Match(string, string) nlp.KeywordAnalysis { panic("index out of range") }

type fakeScorer struct {
	a     Assessment
	err   error
	delay time.Duration
	calls int
}

func (f *fakeScorer) Score(ctx context.Context, _, _ string) (Assessment, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return Assessment{}, ctx.Err()
		}
	}
	return f.a, f.err
}

type fakeRepo struct {
	mu      sync.Mutex
	records []Record
	err     error
	now     time.Time
}

func (r *fakeRepo) Create(_ context.Context, resumeText, jobDescription string, report Report) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return Record{}, r.err
	}
	rec := Record{
		ID:             int64(len(r.records) + 1),
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Result:         report,
		CreatedAt:      r.now.Add(time.Duration(len(r.records)) * time.Second),
	}
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *fakeRepo) ListAll(context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

var errBoom = errors.New("boom")
