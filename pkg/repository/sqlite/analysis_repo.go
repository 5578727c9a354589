package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/artem13815/atsmatch/pkg/analysis"
)

// createdAtLayout — фиксированная ширина, чтобы строки сортировались как время.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// AnalysisRepository хранит анализы в SQLite.
type AnalysisRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewAnalysisRepository(db *sql.DB) (*AnalysisRepository, error) {
	r := &AnalysisRepository{db: db, now: time.Now}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS analyses (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		resume_text     TEXT NOT NULL,
		job_description TEXT NOT NULL,
		result          TEXT NOT NULL,
		created_at      TEXT NOT NULL
	)`)
	return err
}

func (r *AnalysisRepository) Create(ctx context.Context, resumeText, jobDescription string, report analysis.Report) (analysis.Record, error) {
	resultJSON, err := json.Marshal(report)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("marshal report: %w", err)
	}
	created := r.now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO analyses (resume_text, job_description, result, created_at) VALUES (?, ?, ?, ?)`,
		resumeText, jobDescription, string(resultJSON), created.Format(createdAtLayout),
	)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("insert analysis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return analysis.Record{}, fmt.Errorf("insert analysis: %w", err)
	}
	return analysis.Record{
		ID:             id,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Result:         report,
		CreatedAt:      created,
	}, nil
}

func (r *AnalysisRepository) GetByID(ctx context.Context, id int64) (analysis.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, resume_text, job_description, result, created_at FROM analyses WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return analysis.Record{}, analysis.ErrNotFound
	}
	return rec, err
}

func (r *AnalysisRepository) ListAll(ctx context.Context) ([]analysis.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, resume_text, job_description, result, created_at FROM analyses ORDER BY created_at DESC, id DESC`)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (analysis.Record, error) {
	var (
		rec       analysis.Record
		resultRaw string
		created   string
	)
	if err := s.Scan(&rec.ID, &rec.ResumeText, &rec.JobDescription, &resultRaw, &created); err != nil {
		return analysis.Record{}, err
	}
	if err := json.Unmarshal([]byte(resultRaw), &rec.Result); err != nil {
		return analysis.Record{}, fmt.Errorf("decode analysis %d: %w", rec.ID, err)
	}
	t, err := time.Parse(createdAtLayout, created)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("decode analysis %d created_at: %w", rec.ID, err)
	}
	rec.CreatedAt = t
	return rec, nil
}
