package recorder

import "BlackjackOdds/internal/model"

// Recorder persists finished sweeps for later analysis.
type Recorder interface {
	RecordSweep(run *model.SweepRun) error
	Close() error
}
