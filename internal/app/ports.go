package app

import (
	"context"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/analysis"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

// TableLoader reads a dataset file into a typed table.
type TableLoader interface {
	Load(path string, maxRows int) (*table.Table, error)
}

// AggregateSink receives a finished analysis report for persistence.
type AggregateSink interface {
	SaveReport(ctx context.Context, runID string, rep analysis.Report) error
}
