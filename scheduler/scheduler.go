// Package scheduler runs background jobs with gocron: a daily prewarm that
// translates the whole catalog into the configured languages so that first
// requests are served from the translation cache, and a periodic cleanup of
// idle rate limiter buckets.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/logging"
	"github.com/giygas/afyabuddy-api/metrics"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

const (
	DefaultSchedule        = "03:00"
	DefaultCleanupInterval = 30 * time.Minute
)

// Options configures the jobs. Prewarm is only scheduled when Languages is
// non-empty, cleanup only when Cleanup is set.
type Options struct {
	Languages       []string
	Schedule        string // gocron At() string, e.g. "03:00;15:00"
	PrewarmOnStart  bool
	Cleanup         func() int
	CleanupInterval time.Duration
}

// PrewarmReport summarizes one prewarm run
type PrewarmReport struct {
	RunID     string
	Languages []string
	Records   int
	Duration  time.Duration
	Cancelled bool
}

// Scheduler handles cache prewarming and housekeeping using dependency injection
type Scheduler struct {
	catalog    interfaces.ConditionCatalog
	translator interfaces.RecordTranslator
	opts       Options
	scheduler  *gocron.Scheduler

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool
	last    atomic.Pointer[PrewarmReport]
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(catalog interfaces.ConditionCatalog, translator interfaces.RecordTranslator, opts Options) *Scheduler {
	if opts.Schedule == "" {
		opts.Schedule = DefaultSchedule
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = DefaultCleanupInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		catalog:    catalog,
		translator: translator,
		opts:       opts,
		scheduler:  gocron.NewScheduler(time.Local),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start registers the jobs and starts the scheduler in the background
func (s *Scheduler) Start() error {
	if len(s.opts.Languages) > 0 && s.translator != nil {
		_, err := s.scheduler.Every(1).Days().At(s.opts.Schedule).Do(func() {
			s.Prewarm(s.ctx)
		})
		if err != nil {
			logging.Error("Failed to schedule prewarm", "schedule", s.opts.Schedule, "error", err)
			return fmt.Errorf("failed to schedule prewarm: %w", err)
		}

		if s.opts.PrewarmOnStart {
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.Prewarm(s.ctx)
			}()
		}
	}

	if s.opts.Cleanup != nil {
		_, err := s.scheduler.Every(s.opts.CleanupInterval).Do(func() {
			if removed := s.opts.Cleanup(); removed > 0 {
				logging.Debug("Rate limiter cleanup", "removed", removed)
			}
		})
		if err != nil {
			logging.Error("Failed to schedule rate limiter cleanup", "error", err)
			return fmt.Errorf("failed to schedule cleanup: %w", err)
		}
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop cancels a running prewarm and stops the scheduler
func (s *Scheduler) Stop() {
	s.cancel()
	s.scheduler.Stop()
	s.wg.Wait()
}

// LastPrewarm returns the report of the last finished run, or nil
func (s *Scheduler) LastPrewarm() *PrewarmReport {
	return s.last.Load()
}

// Prewarm translates every record and the fallback message into each
// configured language. Concurrent runs are skipped. Individual translation
// failures are absorbed by the translator.
func (s *Scheduler) Prewarm(ctx context.Context) *PrewarmReport {
	if !s.running.CompareAndSwap(false, true) {
		logging.Info("Prewarm already in progress, skipping...")
		metrics.PrewarmRuns.WithLabelValues(metrics.PrewarmSkipped).Inc()
		return nil
	}
	defer s.running.Store(false)

	report := &PrewarmReport{RunID: uuid.NewString()}
	start := time.Now()
	logging.Info("Starting translation prewarm", "run_id", report.RunID, "languages", s.opts.Languages)

	records := s.catalog.All()
	for _, lang := range s.opts.Languages {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}

		for _, record := range records {
			if ctx.Err() != nil {
				report.Cancelled = true
				break
			}
			s.translator.TranslateRecord(ctx, record, lang)
			report.Records++
		}
		if report.Cancelled {
			break
		}
		s.translator.TranslateResponse(ctx, entities.FallbackResponse(), lang)

		report.Languages = append(report.Languages, lang)
	}

	report.Duration = time.Since(start)
	s.last.Store(report)

	if report.Cancelled {
		metrics.PrewarmRuns.WithLabelValues(metrics.PrewarmCancelled).Inc()
		logging.Warn("Translation prewarm cancelled", "run_id", report.RunID, "records", report.Records)
		return report
	}

	metrics.PrewarmRuns.WithLabelValues(metrics.PrewarmCompleted).Inc()
	logging.Info("Translation prewarm completed",
		"run_id", report.RunID,
		"duration", report.Duration.String(),
		"records", report.Records,
	)
	return report
}
