// Package memory keeps analyses in process memory. Data is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/artem13815/atsmatch/pkg/analysis"
)

// AnalysisRepository — упорядоченный список записей и счётчик id под одним мьютексом.
type AnalysisRepository struct {
	mu      sync.RWMutex
	records []analysis.Record
	nextID  int64
	now     func() time.Time
}

func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{nextID: 1, now: time.Now}
}

func (r *AnalysisRepository) Create(_ context.Context, resumeText, jobDescription string, report analysis.Report) (analysis.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := analysis.Record{
		ID:             r.nextID,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Result:         report,
		CreatedAt:      r.now().UTC(),
	}
	r.nextID++
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *AnalysisRepository) GetByID(_ context.Context, id int64) (analysis.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// записи лежат по возрастанию id
	i := sort.Search(len(r.records), func(i int) bool { return r.records[i].ID >= id })
	if i < len(r.records) && r.records[i].ID == id {
		return r.records[i], nil
	}
	return analysis.Record{}, analysis.ErrNotFound
}

func (r *AnalysisRepository) ListAll(_ context.Context) ([]analysis.Record, error) {
	r.mu.RLock()
	out := make([]analysis.Record, len(r.records))
	copy(out, r.records)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
