package scheduler

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/giygas/afyabuddy-api/catalog"
	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/translation"
)

// countingTranslator records every call per target language
type countingTranslator struct {
	mu    sync.Mutex
	calls map[string]int
}

func newCountingTranslator() *countingTranslator {
	return &countingTranslator{calls: make(map[string]int)}
}

func (c *countingTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[target]++
	return "[" + target + "] " + text, nil
}

func (c *countingTranslator) count(target string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[target]
}

func (c *countingTranslator) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}

// translatableStrings counts the non-blank strings of a record
func translatableStrings(r entities.ConditionRecord) int {
	n := 0
	if strings.TrimSpace(r.Title) != "" {
		n++
	}
	for _, list := range [][]string{r.Steps, r.DoNot, r.SeekHelpIf, r.Symptoms, r.Recommendations} {
		for _, item := range list {
			if strings.TrimSpace(item) != "" {
				n++
			}
		}
	}
	return n
}

func newTestScheduler(t *testing.T, opts Options) (*Scheduler, *countingTranslator, *catalog.Catalog) {
	t.Helper()

	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	counter := newCountingTranslator()
	adapter := translation.NewAdapter(counter, translation.Options{Timeout: time.Second, Concurrency: 4})

	return NewScheduler(c, adapter, opts), counter, c
}

func TestScheduler_PrewarmTouchesEveryString(t *testing.T) {
	s, counter, c := newTestScheduler(t, Options{Languages: []string{"sw", "fr"}})

	expected := 1 // fallback message
	for _, record := range c.All() {
		expected += translatableStrings(record)
	}

	report := s.Prewarm(context.Background())
	if report == nil {
		t.Fatal("Expected a prewarm report")
	}

	for _, lang := range []string{"sw", "fr"} {
		if got := counter.count(lang); got != expected {
			t.Errorf("Expected %d translation calls for %s, got %d", expected, lang, got)
		}
	}

	if report.Records != 2*c.Len() {
		t.Errorf("Expected %d records, got %d", 2*c.Len(), report.Records)
	}
	if report.RunID == "" {
		t.Error("Expected a run ID")
	}
	if report.Cancelled {
		t.Error("Run should not be cancelled")
	}
	if s.LastPrewarm() != report {
		t.Error("LastPrewarm should return the latest report")
	}
}

func TestScheduler_PrewarmSourceLanguageMakesNoCalls(t *testing.T) {
	s, counter, _ := newTestScheduler(t, Options{Languages: []string{"en"}})

	s.Prewarm(context.Background())

	if counter.total() != 0 {
		t.Errorf("Expected no translation calls for the source language, got %d", counter.total())
	}
}

func TestScheduler_ConcurrentPrewarmPrevention(t *testing.T) {
	s, counter, _ := newTestScheduler(t, Options{Languages: []string{"sw"}})

	s.running.Store(true)
	if report := s.Prewarm(context.Background()); report != nil {
		t.Error("Expected concurrent run to be skipped")
	}
	if counter.total() != 0 {
		t.Errorf("Skipped run should not translate, got %d calls", counter.total())
	}

	s.running.Store(false)
	if report := s.Prewarm(context.Background()); report == nil {
		t.Error("Expected run to proceed once the previous one finished")
	}
}

func TestScheduler_PrewarmCancelled(t *testing.T) {
	s, counter, _ := newTestScheduler(t, Options{Languages: []string{"sw"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := s.Prewarm(ctx)
	if report == nil || !report.Cancelled {
		t.Fatalf("Expected a cancelled report, got %+v", report)
	}
	if report.Records != 0 || len(report.Languages) != 0 {
		t.Errorf("Expected nothing prewarmed, got %+v", report)
	}
	if counter.total() != 0 {
		t.Errorf("Expected no translation calls, got %d", counter.total())
	}
}

func TestScheduler_StartRegistersJobs(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		expectedJobs int
	}{
		{"no jobs", Options{}, 0},
		{"prewarm only", Options{Languages: []string{"sw"}, Schedule: "03:00;15:30"}, 1},
		{"cleanup only", Options{Cleanup: func() int { return 0 }, CleanupInterval: time.Hour}, 1},
		{"both jobs", Options{Languages: []string{"sw"}, Cleanup: func() int { return 0 }, CleanupInterval: time.Hour}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestScheduler(t, tt.opts)

			if err := s.Start(); err != nil {
				t.Fatalf("Start failed: %v", err)
			}
			defer s.Stop()

			if got := len(s.scheduler.Jobs()); got != tt.expectedJobs {
				t.Errorf("Expected %d jobs, got %d", tt.expectedJobs, got)
			}
		})
	}
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	s, _, _ := newTestScheduler(t, Options{Languages: []string{"sw"}, Schedule: "25:99"})
	defer s.Stop()

	if err := s.Start(); err == nil {
		t.Error("Expected an error for an invalid schedule")
	}
}

func TestScheduler_PrewarmOnStart(t *testing.T) {
	s, counter, _ := newTestScheduler(t, Options{Languages: []string{"sw"}, PrewarmOnStart: true})

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for s.LastPrewarm() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if s.LastPrewarm() == nil {
		t.Fatal("Expected prewarm to run on start")
	}
	if counter.count("sw") == 0 {
		t.Error("Expected translation calls for sw")
	}
}

func TestScheduler_CleanupRuns(t *testing.T) {
	var calls atomic.Int32
	s, _, _ := newTestScheduler(t, Options{
		Cleanup:         func() int { calls.Add(1); return 1 },
		CleanupInterval: time.Hour,
	})

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	// Interval jobs run once immediately on start
	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if calls.Load() == 0 {
		t.Error("Expected cleanup to run after start")
	}
}
