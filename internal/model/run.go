package model

import "time"

// SweepRun describes one completed sweep and where its table went.
type SweepRun struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration
	Table     *Table
	CSVPath   string
	CSVBytes  int64
}
