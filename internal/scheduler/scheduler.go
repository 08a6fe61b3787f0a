package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"BlackjackOdds/internal/config"
	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/recorder"
	"BlackjackOdds/internal/report"
	"BlackjackOdds/internal/sweep"
)

// Scheduler runs sweeps on a cron schedule or on demand and keeps the most
// recent table for readers.
type Scheduler struct {
	Cron     *cron.Cron
	Recorder recorder.Recorder
	Range    sweep.Range
	Workers  int
	Output   config.OutputConfig
	Ctx      context.Context

	runMu  sync.Mutex
	mu     sync.RWMutex
	latest *model.Table
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, rec recorder.Recorder, r sweep.Range, workers int, out config.OutputConfig) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		Recorder: rec,
		Range:    r,
		Workers:  workers,
		Output:   out,
		Ctx:      ctx,
	}
}

// RegisterSweep schedules the sweep task with a six-field cron spec.
func (s *Scheduler) RegisterSweep(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	log.Printf("[INFO] sweep scheduled: %s", spec)
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// Latest returns the table from the most recent successful sweep, or nil.
func (s *Scheduler) Latest() *model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Scheduler) sweepTask() {
	if _, err := s.RunNow(); err != nil {
		log.Printf("[ERROR] scheduled sweep: %v", err)
	}
}

// RunNow computes a sweep, writes the CSV, records the run and publishes
// the table. Concurrent calls run one after another.
func (s *Scheduler) RunNow() (*model.SweepRun, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	run := &model.SweepRun{ID: uuid.NewString(), StartedAt: time.Now()}
	log.Printf("[INFO] running sweep %s for hands %d..%d", run.ID, s.Range.MinHand, s.Range.MaxHand)

	table, err := sweep.Run(s.Ctx, s.Range, s.Workers)
	if err != nil {
		return nil, fmt.Errorf("run sweep: %w", err)
	}
	run.Table = table
	run.Duration = time.Since(run.StartedAt)

	if s.Output.CSVPath != "" {
		n, err := writeCSVFile(s.Output.CSVPath, table, s.Output.Precision)
		if err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
		run.CSVPath = s.Output.CSVPath
		run.CSVBytes = n
	}

	s.mu.Lock()
	s.latest = table
	s.mu.Unlock()

	if err := s.Recorder.RecordSweep(run); err != nil {
		log.Printf("[ERROR] record sweep: %v", err)
	}

	log.Printf("[INFO] %s", report.FormatRunSummary(run))
	log.Printf("[INFO] strategy chart:\n%s", report.FormatChart(table))
	return run, nil
}

// writeCSVFile writes the table next to path and renames it into place so
// readers never see a half-written file. It returns the file size.
func writeCSVFile(path string, t *model.Table, precision int) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.CreateTemp(dir, ".results-*.csv")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := report.WriteCSV(f, t, precision); err != nil {
		f.Close()
		return 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("stat temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return 0, fmt.Errorf("rename %s: %w", path, err)
	}
	return info.Size(), nil
}
