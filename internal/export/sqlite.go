package export

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/analysis"
)

// SQLiteSink persists aggregate reports into a local SQLite database so
// past runs stay queryable next to the exported CSVs.
type SQLiteSink struct {
	db     *sql.DB
	logger *slog.Logger
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS run_summaries (
    run_id              TEXT PRIMARY KEY,
    total_papers        INTEGER NOT NULL,
    unique_titles       INTEGER NOT NULL,
    total_journals      INTEGER NOT NULL,
    date_range          TEXT,
    avg_abstract_length REAL,
    created_at          TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS aggregate_counts (
    run_id    TEXT NOT NULL,
    aggregate TEXT NOT NULL,
    position  INTEGER NOT NULL,
    bucket    TEXT NOT NULL,
    count     INTEGER NOT NULL,
    PRIMARY KEY (run_id, aggregate, position)
);`

// OpenSQLite opens (creating if needed) the database and ensures schema.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteSink, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteSink{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSink) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveReport stores the summary row and every aggregate bucket under the
// given run identifier, replacing any previous rows for the same run.
func (s *SQLiteSink) SaveReport(ctx context.Context, runID string, rep analysis.Report) error {
	if s.db == nil {
		return fmt.Errorf("sqlite sink is closed")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	summary := sq.Replace("run_summaries").
		Columns("run_id", "total_papers", "unique_titles", "total_journals",
			"date_range", "avg_abstract_length", "created_at").
		Values(runID, rep.Summary.TotalRows, rep.Summary.DistinctTitles,
			rep.Summary.DistinctJournals, nullable(rep.Summary.YearRange),
			nullableMean(rep.Summary), time.Now().UTC())
	if _, err := summary.RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	del := sq.Delete("aggregate_counts").Where(sq.Eq{"run_id": runID})
	if _, err := del.RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("clear aggregates: %w", err)
	}

	buckets := 0
	insert := func(aggregate string, rows [][]string) error {
		if len(rows) == 0 {
			return nil
		}
		stmt := sq.Insert("aggregate_counts").
			Columns("run_id", "aggregate", "position", "bucket", "count")
		for i, row := range rows {
			stmt = stmt.Values(runID, aggregate, i, row[0], row[1])
			buckets++
		}
		if _, err := stmt.RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("save %s: %w", aggregate, err)
		}
		return nil
	}

	if err := insert("yearly_counts", yearRows(rep.YearlyCounts)); err != nil {
		return err
	}
	if err := insert("top_journals", categoryRows(rep.TopJournals)); err != nil {
		return err
	}
	if err := insert("top_words", wordRows(rep.TopWords)); err != nil {
		return err
	}
	if err := insert("source_distribution", categoryRows(rep.Sources)); err != nil {
		return err
	}
	if err := insert("monthly_trend", monthRows(rep.MonthlyTrend)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}

	s.logger.Info("aggregates saved to sqlite", "run_id", runID, "buckets", buckets)
	return nil
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func nullableMean(s analysis.Summary) any {
	if !s.HasAbstractMean {
		return nil
	}
	return s.MeanAbstractWord
}
