package store

import (
	"context"
	"time"

	"rrsched"
)

// Run is one recorded simulation.
type Run struct {
	ID        string
	CreatedAt time.Time
	Source    string // input file the table was loaded from
	Metrics   rrsched.Metrics
	Procs     []rrsched.ProcRow
}

// Store persists simulation runs.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	Close() error
}
