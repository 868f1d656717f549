package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/data-probe/pkg/models/store"
)

// ErrNotFound is returned by Get when no report exists under the given id.
var ErrNotFound = errors.New("report not found")

// Store keeps a history of finished quality reports in DuckDB. Only report
// output is persisted, never the analyzed rows.
type Store interface {
	Add(ctx context.Context, rep store.QualityReport) error
	List(ctx context.Context, limit int) ([]store.QualityReport, error)
	Get(ctx context.Context, id string) (*store.QualityReport, error)
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) Add(ctx context.Context, rep store.QualityReport) error {
	query := `
		INSERT INTO quality_reports (
			id, file_name, total_rows, total_columns, skipped_rows,
			overall_score, summary, issues, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		rep.ID,
		rep.FileName,
		rep.TotalRows,
		rep.TotalColumns,
		rep.SkippedRows,
		rep.OverallScore,
		rep.Summary,
		string(rep.Issues),
		rep.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *reportStore) List(ctx context.Context, limit int) ([]store.QualityReport, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, file_name, total_rows, total_columns, skipped_rows,
		       overall_score, summary, issues, created_at
		FROM quality_reports
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []store.QualityReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (s *reportStore) Get(ctx context.Context, id string) (*store.QualityReport, error) {
	query := `
		SELECT id, file_name, total_rows, total_columns, skipped_rows,
		       overall_score, summary, issues, created_at
		FROM quality_reports
		WHERE id = ?`

	row := s.db.QueryRowContext(ctx, query, id)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rep, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (store.QualityReport, error) {
	var rep store.QualityReport
	var issues string
	err := row.Scan(
		&rep.ID,
		&rep.FileName,
		&rep.TotalRows,
		&rep.TotalColumns,
		&rep.SkippedRows,
		&rep.OverallScore,
		&rep.Summary,
		&issues,
		&rep.CreatedAt,
	)
	if err != nil {
		return store.QualityReport{}, err
	}
	rep.Issues = []byte(issues)
	return rep, nil
}
