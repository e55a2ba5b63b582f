// Package interfaces defines core abstractions for the first-aid API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"context"
	"net/http"

	"github.com/giygas/afyabuddy-api/entities"
)

// ConditionCatalog is the read-only store of first-aid records.
// Implementations must be safe for concurrent use.
type ConditionCatalog interface {
	Get(id string) (entities.ConditionRecord, error)
	Has(id string) bool
	All() []entities.ConditionRecord
	IDs() []string
	Summaries() []entities.ConditionSummary
	Len() int
}

// KeywordResolver maps free text to a canonical condition identifier
type KeywordResolver interface {
	Resolve(text string) (id string, ok bool)
}

// Responder answers a free-text query. Respond never fails.
type Responder interface {
	Respond(text string) entities.FirstAidResponse
}

// ConditionIDValidator validates and normalizes identifiers taken from URLs
type ConditionIDValidator interface {
	ValidateConditionID(input string) (string, error)
}

// Translator is the external translation capability.
// An empty result with a nil error means no translation is available.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// RecordTranslator translates structured first-aid content. Failures are
// absorbed per string: the original text is kept where translation fails.
type RecordTranslator interface {
	SourceLanguage() string
	TranslateRecord(ctx context.Context, record entities.ConditionRecord, targetLanguage string) entities.ConditionRecord
	TranslateResponse(ctx context.Context, response entities.FirstAidResponse, targetLanguage string) entities.FirstAidResponse
	TranslateText(ctx context.Context, text, targetLanguage string) entities.TranslationResult
}

// TranslationCache stores translated strings keyed by an opaque key
type TranslationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Backend() string
}

// Scheduler defines the contract for background jobs
type Scheduler interface {
	Start() error
	Stop()
}

// HTTPHandler defines the contract for HTTP request handlers.
type HTTPHandler interface {
	FirstAidSteps(w http.ResponseWriter, r *http.Request)
	Translate(w http.ResponseWriter, r *http.Request)
	ListConditions(w http.ResponseWriter, r *http.Request)
	GetCondition(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker reports service health
type HealthChecker interface {
	HealthCheck(ctx context.Context) (status string, details map[string]any, httpStatus int)
}
