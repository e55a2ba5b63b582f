// Package responder answers free-text first-aid queries by combining the
// keyword resolver with the condition catalog.
package responder

import (
	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/logging"
	"github.com/giygas/afyabuddy-api/metrics"
	"github.com/giygas/afyabuddy-api/validation"
)

// Compile-time check to ensure Responder implements interfaces.Responder
var _ interfaces.Responder = (*Responder)(nil)

// Responder is stateless and safe for concurrent use
type Responder struct {
	catalog  interfaces.ConditionCatalog
	resolver interfaces.KeywordResolver
}

// New creates a responder with injected dependencies
func New(catalog interfaces.ConditionCatalog, resolver interfaces.KeywordResolver) *Responder {
	return &Responder{
		catalog:  catalog,
		resolver: resolver,
	}
}

// Respond returns the matching record or the fallback. It never fails.
func (r *Responder) Respond(text string) entities.FirstAidResponse {
	id, ok := r.resolver.Resolve(text)
	if !ok {
		metrics.ConditionLookups.WithLabelValues(metrics.OutcomeFallback).Inc()
		logging.Debug("No condition matched", "query", validation.SanitizeForLog(text))
		return entities.FallbackResponse()
	}

	record, err := r.catalog.Get(id)
	if err != nil {
		// The synonym table is checked against the catalog at load, so this
		// means the two were built from different data.
		metrics.ConditionLookups.WithLabelValues(metrics.OutcomeInconsistent).Inc()
		logging.Error("Resolved condition missing from catalog", "condition", id, "error", err)
		return entities.FallbackResponse()
	}

	metrics.ConditionLookups.WithLabelValues(metrics.OutcomeResolved).Inc()
	return entities.MatchedResponse(record)
}
