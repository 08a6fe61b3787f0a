package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BlackjackOdds/internal/api"
	"BlackjackOdds/internal/config"
	"BlackjackOdds/internal/recorder"
	"BlackjackOdds/internal/scheduler"
	"BlackjackOdds/internal/sweep"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BlackjackOdds starting...")

	if err := config.LoadDotEnv(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		log.Println("[INFO] run history disabled")
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := sweep.Range{MinHand: cfg.Sweep.MinHand, MaxHand: cfg.Sweep.MaxHand}
	sched := scheduler.NewScheduler(ctx, rec, r, cfg.Sweep.Workers, cfg.Output)

	if !cfg.Daemon() {
		if _, err := sched.RunNow(); err != nil {
			log.Printf("[ERROR] sweep: %v", err)
			rec.Close()
			os.Exit(1)
		}
		log.Println("[INFO] BlackjackOdds finished")
		return
	}

	if cfg.Schedule.SweepCron != "" {
		if err := sched.RegisterSweep(cfg.Schedule.SweepCron); err != nil {
			log.Fatalf("[FATAL] register cron tasks: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// The HTTP surface needs a table to serve, so a server always sweeps on start.
	if cfg.Schedule.RunOnStart || cfg.HTTP.Address != "" {
		log.Println("[INFO] running initial sweep")
		go func() {
			if _, err := sched.RunNow(); err != nil {
				log.Printf("[ERROR] initial sweep: %v", err)
			}
		}()
	}

	var srv *http.Server
	if cfg.HTTP.Address != "" {
		h := api.NewHandler(api.HandlerDeps{Tables: sched, Precision: cfg.Output.Precision})
		srv = &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           api.NewRouter(h),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			log.Printf("[INFO] http server listening on %s", cfg.HTTP.Address)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[ERROR] http server: %v", err)
			}
		}()
	}

	log.Println("[INFO] BlackjackOdds is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	if srv != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] http shutdown: %v", err)
		}
	}
	log.Println("[INFO] BlackjackOdds stopped")
}
