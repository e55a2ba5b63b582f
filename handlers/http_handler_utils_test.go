package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/giygas/afyabuddy-api/catalog"
	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/validation"
	"github.com/go-chi/chi/v5"
)

// ============================================================================
// TEST DATA FACTORY
// ============================================================================

// TestDataFactory creates consistent test data across all tests
type TestDataFactory struct{}

func NewTestDataFactory() *TestDataFactory {
	return &TestDataFactory{}
}

// CreateRecord creates a single record with every list populated
func (f *TestDataFactory) CreateRecord(id string, confidence float64) entities.ConditionRecord {
	return entities.ConditionRecord{
		ID:              id,
		Title:           "First aid for " + id,
		Steps:           []string{"Stay calm.", "Call for help."},
		DoNot:           []string{"Do not leave the person alone."},
		SeekHelpIf:      []string{"Symptoms get worse."},
		Symptoms:        []string{"Pain"},
		Confidence:      confidence,
		Recommendations: []string{"Rest afterwards."},
	}
}

// CreateCatalog builds a real catalog from the given identifiers
func (f *TestDataFactory) CreateCatalog(t *testing.T, ids ...string) *catalog.Catalog {
	t.Helper()

	records := make([]entities.ConditionRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, f.CreateRecord(id, 0.9))
	}

	c, err := catalog.New(records)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

// ============================================================================
// MOCK BUILDERS
// ============================================================================

// MockResponder answers with a fixed table keyed by exact input
type MockResponder struct {
	mu        sync.Mutex
	responses map[string]entities.FirstAidResponse
	calls     []string
}

func (m *MockResponder) Respond(text string) entities.FirstAidResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, text)

	if resp, ok := m.responses[text]; ok {
		return resp
	}
	return entities.FallbackResponse()
}

func (m *MockResponder) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockResponderBuilder provides fluent interface for building mock responders
type MockResponderBuilder struct {
	responder *MockResponder
}

func NewMockResponderBuilder() *MockResponderBuilder {
	return &MockResponderBuilder{
		responder: &MockResponder{responses: make(map[string]entities.FirstAidResponse)},
	}
}

func (b *MockResponderBuilder) WithMatch(text string, record entities.ConditionRecord) *MockResponderBuilder {
	b.responder.responses[text] = entities.MatchedResponse(record)
	return b
}

func (b *MockResponderBuilder) Build() *MockResponder {
	return b.responder
}

// MockRecordTranslator prefixes every string with "[lang] " unless the
// target is the source language
type MockRecordTranslator struct {
	mu     sync.Mutex
	source string
	calls  []string
}

func (m *MockRecordTranslator) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockRecordTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockRecordTranslator) SourceLanguage() string {
	return m.source
}

func (m *MockRecordTranslator) prefix(text, target string) string {
	return "[" + target + "] " + text
}

func (m *MockRecordTranslator) TranslateRecord(ctx context.Context, record entities.ConditionRecord, target string) entities.ConditionRecord {
	m.record("record:" + target)
	if target == m.source {
		return record
	}

	out := record.Clone()
	out.Title = m.prefix(out.Title, target)
	for i := range out.Steps {
		out.Steps[i] = m.prefix(out.Steps[i], target)
	}
	return out
}

func (m *MockRecordTranslator) TranslateResponse(ctx context.Context, response entities.FirstAidResponse, target string) entities.FirstAidResponse {
	m.record("response:" + target)
	if target == m.source {
		return response
	}

	if response.Matched {
		response.Record = m.TranslateRecord(ctx, response.Record, target)
		return response
	}
	response.Fallback.Content = m.prefix(response.Fallback.Content, target)
	return response
}

func (m *MockRecordTranslator) TranslateText(ctx context.Context, text, target string) entities.TranslationResult {
	m.record("text:" + target)
	if target == "" {
		target = m.source
	}

	translated := text
	if target != m.source && text != "" {
		translated = m.prefix(text, target)
	}
	return entities.TranslationResult{Original: text, Translated: translated, TargetLanguage: target}
}

// MockRecordTranslatorBuilder provides fluent interface for building mock translators
type MockRecordTranslatorBuilder struct {
	translator *MockRecordTranslator
}

func NewMockRecordTranslatorBuilder() *MockRecordTranslatorBuilder {
	return &MockRecordTranslatorBuilder{translator: &MockRecordTranslator{source: "en"}}
}

func (b *MockRecordTranslatorBuilder) WithSource(source string) *MockRecordTranslatorBuilder {
	b.translator.source = source
	return b
}

func (b *MockRecordTranslatorBuilder) Build() *MockRecordTranslator {
	return b.translator
}

// MockHealthChecker returns a fixed health result
type MockHealthChecker struct {
	status     string
	details    map[string]any
	httpStatus int
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) (string, map[string]any, int) {
	return m.status, m.details, m.httpStatus
}

// MockHealthCheckerBuilder provides fluent interface for building mock health checkers
type MockHealthCheckerBuilder struct {
	checker *MockHealthChecker
}

func NewMockHealthCheckerBuilder() *MockHealthCheckerBuilder {
	return &MockHealthCheckerBuilder{
		checker: &MockHealthChecker{
			status:     "healthy",
			details:    map[string]any{"conditions": 11},
			httpStatus: http.StatusOK,
		},
	}
}

func (b *MockHealthCheckerBuilder) WithStatus(status string, httpStatus int) *MockHealthCheckerBuilder {
	b.checker.status = status
	b.checker.httpStatus = httpStatus
	return b
}

func (b *MockHealthCheckerBuilder) Build() *MockHealthChecker {
	return b.checker
}

// ============================================================================
// HTTP TEST HELPER
// ============================================================================

// HTTPTestHelper provides utilities for HTTP handler testing
type HTTPTestHelper struct {
	t *testing.T
}

func NewHTTPTestHelper(t *testing.T) *HTTPTestHelper {
	return &HTTPTestHelper{t: t}
}

// ExecuteRequest executes an HTTP handler with given parameters
func (h *HTTPTestHelper) ExecuteRequest(handler http.HandlerFunc, method, path, body string, urlParams map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)

	if len(urlParams) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range urlParams {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

// AssertJSONResponse asserts that response contains valid JSON with expected status
func (h *HTTPTestHelper) AssertJSONResponse(resp *httptest.ResponseRecorder, expectedStatus int, target any) {
	h.t.Helper()

	if resp.Code != expectedStatus {
		h.t.Errorf("Expected status %d, got %d", expectedStatus, resp.Code)
	}

	bodyStr := resp.Body.String()
	if bodyStr == "" {
		h.t.Error("Response body should not be empty")
	}

	if err := json.Unmarshal([]byte(bodyStr), target); err != nil {
		h.t.Errorf("Response should be valid JSON, got error: %v", err)
	}
}

// AssertErrorResponse asserts that response contains an error with expected status
func (h *HTTPTestHelper) AssertErrorResponse(resp *httptest.ResponseRecorder, expectedStatus int) {
	h.t.Helper()

	if resp.Code != expectedStatus {
		h.t.Errorf("Expected status %d, got %d", expectedStatus, resp.Code)
	}

	var errorResp map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &errorResp); err != nil {
		h.t.Errorf("Error response should be valid JSON, got error: %v", err)
	}

	for _, field := range []string{"error", "message", "code"} {
		if _, ok := errorResp[field]; !ok {
			h.t.Errorf("Error response should have %s field", field)
		}
	}
}

// newTestHandler wires a handler around the default test doubles
func newTestHandler(t *testing.T, responder *MockResponder, translator *MockRecordTranslator) *HTTPHandlerImpl {
	t.Helper()

	c := NewTestDataFactory().CreateCatalog(t, "burn", "choking", "low blood sugar")
	if translator == nil {
		// A typed nil pointer would not compare equal to a nil interface
		return NewHTTPHandler(responder, nil, c, validation.NewCatalogValidator(), NewMockHealthCheckerBuilder().Build()).(*HTTPHandlerImpl)
	}
	return NewHTTPHandler(responder, translator, c, validation.NewCatalogValidator(), NewMockHealthCheckerBuilder().Build()).(*HTTPHandlerImpl)
}
