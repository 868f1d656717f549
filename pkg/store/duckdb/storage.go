package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ReportTableSchema = `
	CREATE TABLE IF NOT EXISTS quality_reports (
		id VARCHAR NOT NULL PRIMARY KEY,
		file_name VARCHAR NOT NULL,
		total_rows INTEGER NOT NULL,
		total_columns INTEGER NOT NULL,
		skipped_rows INTEGER NOT NULL,
		overall_score INTEGER NOT NULL,
		summary VARCHAR,
		issues JSON,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	ReportTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
