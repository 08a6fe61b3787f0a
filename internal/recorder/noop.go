package recorder

import "BlackjackOdds/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSweep(_ *model.SweepRun) error { return nil }
func (n *NoopRecorder) Close() error                        { return nil }
