// Package handlers provides HTTP request handlers for the first-aid API endpoints.
// This file implements the HTTPHandler interface with dependency injection.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/logging"
	"github.com/giygas/afyabuddy-api/translation"
	"github.com/giygas/afyabuddy-api/validation"
	"github.com/go-chi/chi/v5"
)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	responder     interfaces.Responder
	translator    interfaces.RecordTranslator
	catalog       interfaces.ConditionCatalog
	validator     interfaces.ConditionIDValidator
	healthChecker interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies.
// A nil translator disables translation: content is served in the source language.
func NewHTTPHandler(
	responder interfaces.Responder,
	translator interfaces.RecordTranslator,
	catalog interfaces.ConditionCatalog,
	validator interfaces.ConditionIDValidator,
	healthChecker interfaces.HealthChecker,
) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		responder:     responder,
		translator:    translator,
		catalog:       catalog,
		validator:     validator,
		healthChecker: healthChecker,
	}
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
	System map[string]any `json:"system"`
}

// RespondWithJSON writes a JSON response
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]any{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, code, errorResponse)
}

// FirstAidSteps resolves free text to first-aid instructions, translated
// when target_language differs from the source language
func (h *HTTPHandlerImpl) FirstAidSteps(w http.ResponseWriter, r *http.Request) {
	var req firstAidRequest
	if tooLarge := decodeLenient(r, &req); tooLarge {
		h.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	response := h.responder.Respond(req.Condition)
	if h.translator != nil && req.TargetLanguage != "" {
		response = h.translator.TranslateResponse(r.Context(), response, req.TargetLanguage)
	}

	logging.Info("First-aid request",
		"condition", validation.SanitizeForLog(req.Condition),
		"matched", response.Matched,
		"target_language", req.TargetLanguage,
	)

	h.RespondWithJSON(w, http.StatusOK, response)
}

// Translate translates a free-text string; the original text is returned
// as the translation when the translator is unavailable
func (h *HTTPHandlerImpl) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if tooLarge := decodeLenient(r, &req); tooLarge {
		h.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	if h.translator == nil {
		h.RespondWithJSON(w, http.StatusOK, entities.TranslationResult{
			Original:       req.Text,
			Translated:     req.Text,
			TargetLanguage: translation.NormalizeLanguage(req.TargetLanguage, translation.DefaultSourceLanguage),
		})
		return
	}

	result := h.translator.TranslateText(r.Context(), req.Text, req.TargetLanguage)
	h.RespondWithJSON(w, http.StatusOK, result)
}

// ListConditions returns a summary of every condition in catalog order
func (h *HTTPHandlerImpl) ListConditions(w http.ResponseWriter, r *http.Request) {
	h.RespondWithJSON(w, http.StatusOK, h.catalog.Summaries())
}

// GetCondition returns one record by identifier. The optional lang query
// parameter selects a translation.
func (h *HTTPHandlerImpl) GetCondition(w http.ResponseWriter, r *http.Request) {
	raw, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid condition")
		return
	}

	id, err := h.validator.ValidateConditionID(raw)
	if err != nil {
		logging.Warn("Unusual user input", "condition", validation.SanitizeForLog(raw))
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.catalog.Get(id)
	if err != nil {
		h.RespondWithError(w, http.StatusNotFound, "Condition not found")
		return
	}

	if lang := r.URL.Query().Get("lang"); lang != "" && h.translator != nil {
		record = h.translator.TranslateRecord(r.Context(), record, lang)
	}

	h.RespondWithJSON(w, http.StatusOK, record)
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.healthChecker == nil {
		h.RespondWithError(w, http.StatusServiceUnavailable, "Health checker not configured")
		return
	}

	status, details, httpStatus := h.healthChecker.HealthCheck(r.Context())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status: status,
		Data:   details,
		System: map[string]any{
			"goroutines": runtime.NumGoroutine(),
			"time":       time.Now().UTC().Format(time.RFC3339),
			"memory": map[string]any{
				"alloc_mb": int(m.Alloc / 1024 / 1024),
				"sys_mb":   int(m.Sys / 1024 / 1024),
				"num_gc":   m.NumGC,
			},
		},
	}

	h.RespondWithJSON(w, httpStatus, response)
}

// isTooLarge reports whether err comes from an http.MaxBytesReader limit
func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
