package interfaces

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giygas/afyabuddy-api/entities"
)

var errNotFound = errors.New("not found")

// MockCatalog implements ConditionCatalog for testing
type MockCatalog struct {
	records []entities.ConditionRecord
}

func (m *MockCatalog) Get(id string) (entities.ConditionRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return entities.ConditionRecord{}, errNotFound
}

func (m *MockCatalog) Has(id string) bool {
	_, err := m.Get(id)
	return err == nil
}

func (m *MockCatalog) All() []entities.ConditionRecord {
	return m.records
}

func (m *MockCatalog) IDs() []string {
	ids := make([]string, len(m.records))
	for i, r := range m.records {
		ids[i] = r.ID
	}
	return ids
}

func (m *MockCatalog) Summaries() []entities.ConditionSummary {
	out := make([]entities.ConditionSummary, len(m.records))
	for i, r := range m.records {
		out[i] = r.Summary()
	}
	return out
}

func (m *MockCatalog) Len() int {
	return len(m.records)
}

// MockResolver implements KeywordResolver with a fixed phrase table
type MockResolver struct {
	phrases map[string]string
}

func (m *MockResolver) Resolve(text string) (string, bool) {
	for phrase, id := range m.phrases {
		if strings.Contains(strings.ToLower(text), phrase) {
			return id, true
		}
	}
	return "", false
}

// MockTranslator implements Translator
type MockTranslator struct {
	shouldFail bool
}

func (m *MockTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	if m.shouldFail {
		return "", errors.New("translator unavailable")
	}
	return strings.ToUpper(text), nil
}

// MockCache implements TranslationCache
type MockCache struct {
	data map[string]string
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MockCache) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MockCache) Backend() string {
	return "mock"
}

// MockScheduler implements Scheduler
type MockScheduler struct {
	started bool
	stopped bool
}

func (m *MockScheduler) Start() error {
	m.started = true
	return nil
}

func (m *MockScheduler) Stop() {
	m.stopped = true
}

// MockHTTPHandler implements HTTPHandler and writes a fixed response
type MockHTTPHandler struct {
	responseCode int
	responseBody string
}

func (m *MockHTTPHandler) write(w http.ResponseWriter) {
	w.WriteHeader(m.responseCode)
	_, _ = w.Write([]byte(m.responseBody))
}

func (m *MockHTTPHandler) FirstAidSteps(w http.ResponseWriter, r *http.Request)  { m.write(w) }
func (m *MockHTTPHandler) Translate(w http.ResponseWriter, r *http.Request)      { m.write(w) }
func (m *MockHTTPHandler) ListConditions(w http.ResponseWriter, r *http.Request) { m.write(w) }
func (m *MockHTTPHandler) GetCondition(w http.ResponseWriter, r *http.Request)   { m.write(w) }
func (m *MockHTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request)    { m.write(w) }

// MockHealthChecker implements HealthChecker
type MockHealthChecker struct {
	status  string
	details map[string]any
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) (string, map[string]any, int) {
	return m.status, m.details, http.StatusOK
}

// Example of how interfaces enable dependency injection
type Service struct {
	catalog  ConditionCatalog
	resolver KeywordResolver
}

func (s *Service) Lookup(text string) (entities.ConditionRecord, bool) {
	id, ok := s.resolver.Resolve(text)
	if !ok {
		return entities.ConditionRecord{}, false
	}
	record, err := s.catalog.Get(id)
	return record, err == nil
}

func TestServiceWithDependencyInjection(t *testing.T) {
	service := &Service{
		catalog:  &MockCatalog{records: []entities.ConditionRecord{{ID: "burn", Title: "Burn"}}},
		resolver: &MockResolver{phrases: map[string]string{"burn": "burn", "choking": "choking"}},
	}

	if record, ok := service.Lookup("I BURNED my arm"); !ok || record.Title != "Burn" {
		t.Errorf("Expected burn record, got %+v (ok=%v)", record, ok)
	}

	// Resolved but absent from the catalog
	if _, ok := service.Lookup("choking"); ok {
		t.Error("Expected lookup of a missing condition to fail")
	}
}

func TestTranslatorInterface(t *testing.T) {
	var translator Translator = &MockTranslator{}
	out, err := translator.Translate(context.Background(), "stay calm", "sw")
	if err != nil || out != "STAY CALM" {
		t.Errorf("Unexpected result %q, %v", out, err)
	}

	translator = &MockTranslator{shouldFail: true}
	if _, err := translator.Translate(context.Background(), "stay calm", "sw"); err == nil {
		t.Error("Expected error but got none")
	}
}

func TestTranslationCacheInterface(t *testing.T) {
	var cache TranslationCache = &MockCache{data: make(map[string]string)}
	ctx := context.Background()

	if _, ok, _ := cache.Get(ctx, "k"); ok {
		t.Error("Expected miss on empty cache")
	}
	_ = cache.Set(ctx, "k", "v")
	if v, ok, _ := cache.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("Expected hit with v, got %q (ok=%v)", v, ok)
	}
}

func TestSchedulerInterface(t *testing.T) {
	scheduler := &MockScheduler{}

	if err := scheduler.Start(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !scheduler.started {
		t.Error("Scheduler should be started")
	}

	scheduler.Stop()
	if !scheduler.stopped {
		t.Error("Scheduler should be stopped")
	}
}

func TestHTTPHandlerInterface(t *testing.T) {
	var handler HTTPHandler = &MockHTTPHandler{
		responseCode: http.StatusOK,
		responseBody: "test response",
	}

	req := httptest.NewRequest("POST", "/api/first-aid-steps", nil)
	w := httptest.NewRecorder()

	handler.FirstAidSteps(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.String() != "test response" {
		t.Errorf("Expected body 'test response', got '%s'", w.Body.String())
	}
}

func TestHealthCheckerInterface(t *testing.T) {
	var checker HealthChecker = &MockHealthChecker{
		status:  "healthy",
		details: map[string]any{"conditions": 11},
	}

	status, details, code := checker.HealthCheck(context.Background())
	if status != "healthy" || code != http.StatusOK {
		t.Errorf("Expected healthy/200, got %s/%d", status, code)
	}
	if details["conditions"] != 11 {
		t.Errorf("Expected 11 conditions, got %v", details["conditions"])
	}
}

// Compile-time checks to ensure our implementations implement the interfaces
func TestCompileTimeChecks(t *testing.T) {
	var _ ConditionCatalog = (*MockCatalog)(nil)
	var _ KeywordResolver = (*MockResolver)(nil)
	var _ Translator = (*MockTranslator)(nil)
	var _ TranslationCache = (*MockCache)(nil)
	var _ Scheduler = (*MockScheduler)(nil)
	var _ HTTPHandler = (*MockHTTPHandler)(nil)
	var _ HealthChecker = (*MockHealthChecker)(nil)
}
