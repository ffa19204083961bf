// Package app wires configuration into one analysis session: load the
// dataset (preferring the pre-cleaned cache), run the cleaning pipeline,
// compute aggregates and hand them to the export sinks.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/analysis"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/cleaning"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/config"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/export"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/loader"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/logging"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

var _ TableLoader = (*loader.Loader)(nil)
var _ AggregateSink = (*export.SQLiteSink)(nil)

// Session is one synchronous pass over the dataset. Each session carries a
// run identifier that tags all diagnostics and exported rows.
type Session struct {
	cfg    config.Config
	loader TableLoader
	logger *slog.Logger
	runID  string
}

// NewSession builds a session from configuration.
func NewSession(cfg config.Config, baseLogger *slog.Logger) *Session {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}
	runID := uuid.NewString()
	logger := baseLogger.With("run_id", runID)

	return &Session{
		cfg:    cfg,
		loader: loader.New(logger.With("component", "loader")),
		logger: logger,
		runID:  runID,
	}
}

// RunID returns the identifier tagging this session's outputs.
func (s *Session) RunID() string { return s.runID }

// Load reads the raw dataset, honoring the configured sample size.
func (s *Session) Load() (*table.Table, error) {
	return s.loader.Load(s.cfg.Data.Path, s.cfg.Data.SampleSize)
}

// LoadData returns an analyzable table: the pre-cleaned cache verbatim
// when it exists, otherwise the raw dataset run through the cleaning
// pipeline. The second return reports whether the cache was used.
func (s *Session) LoadData() (*table.Table, bool, error) {
	if cache := s.cfg.Data.CleanedPath; cache != "" {
		if _, err := os.Stat(cache); err == nil {
			t, err := s.loader.Load(cache, 0)
			if err != nil {
				return nil, false, fmt.Errorf("load cleaned cache: %w", err)
			}
			s.logger.Info("loaded pre-cleaned data", "path", cache, "rows", t.RowCount())
			return t, true, nil
		}
	}

	raw, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	return s.Clean(raw), false, nil
}

// Clean runs the full cleaning pipeline on its own copy of the table.
func (s *Session) Clean(t *table.Table) *table.Table {
	pipeline := cleaning.NewPipeline(t, s.cleaningOptions(), s.logger.With("component", "cleaning"))
	return pipeline.CleanedCopy()
}

// WriteCleanedCache persists a cleaned table so later sessions skip the
// pipeline entirely.
func (s *Session) WriteCleanedCache(t *table.Table) error {
	if s.cfg.Data.CleanedPath == "" {
		return nil
	}
	if err := export.WriteTable(t, s.cfg.Data.CleanedPath); err != nil {
		return fmt.Errorf("write cleaned cache: %w", err)
	}
	s.logger.Info("cleaned cache written", "path", s.cfg.Data.CleanedPath, "rows", t.RowCount())
	return nil
}

// Analyze computes the full aggregate report for the table.
func (s *Session) Analyze(t *table.Table) analysis.Report {
	analyzer := analysis.New(t, s.analysisOptions(), s.logger.With("component", "analysis"))
	return analyzer.Report(
		s.cfg.Analysis.TopJournals,
		s.cfg.Analysis.TopWords,
		s.cfg.Analysis.MinWordLength,
	)
}

// ExportReport writes the report to the CSV directory and, when
// configured, to the SQLite sink.
func (s *Session) ExportReport(ctx context.Context, rep analysis.Report) error {
	writer := export.NewCSVWriter(s.cfg.Export.Dir, s.logger.With("component", "export"))
	if err := writer.WriteReport(rep); err != nil {
		return err
	}

	if s.cfg.Export.SQLitePath == "" {
		return nil
	}
	sink, err := export.OpenSQLite(s.cfg.Export.SQLitePath, s.logger.With("component", "export"))
	if err != nil {
		return err
	}
	defer sink.Close()
	return sink.SaveReport(ctx, s.runID, rep)
}

func (s *Session) cleaningOptions() cleaning.Options {
	return cleaning.Options{
		DropThreshold:  s.cfg.Cleaning.DropThreshold,
		DateColumns:    s.cfg.Cleaning.DateColumns,
		TextColumns:    s.cfg.Cleaning.TextColumns,
		TitleColumn:    s.cfg.Cleaning.TitleColumn,
		AbstractColumn: s.cfg.Cleaning.AbstractColumn,
		AuthorsColumn:  s.cfg.Cleaning.AuthorsColumn,
		YearMin:        s.cfg.Cleaning.YearMin,
		YearMax:        s.cfg.Cleaning.YearMax,
	}
}

func (s *Session) analysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()
	opts.TitleColumn = s.cfg.Cleaning.TitleColumn
	opts.JournalColumns = s.cfg.Analysis.JournalColumns
	opts.SourceColumns = s.cfg.Analysis.SourceColumns
	if len(s.cfg.Cleaning.DateColumns) > 0 {
		opts.YearColumn = s.cfg.Cleaning.DateColumns[0] + "_year"
		opts.MonthColumn = s.cfg.Cleaning.DateColumns[0] + "_month"
	}
	return opts
}
