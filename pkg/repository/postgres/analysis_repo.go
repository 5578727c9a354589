package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/atsmatch/pkg/analysis"
)

// AnalysisRepository сохраняет результаты анализа в PostgreSQL.
type AnalysisRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool, now: time.Now}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
	id BIGSERIAL PRIMARY KEY,
	resume_text TEXT NOT NULL,
	job_description TEXT NOT NULL,
	result JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC, id DESC);
`)
	return err
}

func (r *AnalysisRepository) Create(ctx context.Context, resumeText, jobDescription string, report analysis.Report) (analysis.Record, error) {
	resultJSON, err := json.Marshal(report)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("marshal report: %w", err)
	}
	rec := analysis.Record{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Result:         report,
		CreatedAt:      r.now().UTC(),
	}
	// id выдаёт последовательность BIGSERIAL: монотонно и без повторов
	err = r.pool.QueryRow(ctx, `
INSERT INTO analyses (resume_text, job_description, result, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`, resumeText, jobDescription, resultJSON, rec.CreatedAt).Scan(&rec.ID)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("insert analysis: %w", err)
	}
	return rec, nil
}

func (r *AnalysisRepository) GetByID(ctx context.Context, id int64) (analysis.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, resume_text, job_description, result, created_at
FROM analyses WHERE id = $1
`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analysis.Record{}, analysis.ErrNotFound
		}
		return analysis.Record{}, err
	}
	return rec, nil
}

func (r *AnalysisRepository) ListAll(ctx context.Context) ([]analysis.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, resume_text, job_description, result, created_at
FROM analyses
ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []analysis.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(row pgx.Row) (analysis.Record, error) {
	var (
		rec       analysis.Record
		resultRaw []byte
		created   time.Time
	)
	if err := row.Scan(&rec.ID, &rec.ResumeText, &rec.JobDescription, &resultRaw, &created); err != nil {
		return analysis.Record{}, err
	}
	if err := json.Unmarshal(resultRaw, &rec.Result); err != nil {
		return analysis.Record{}, fmt.Errorf("decode analysis %d: %w", rec.ID, err)
	}
	rec.CreatedAt = created.UTC()
	return rec, nil
}
