// Package translation translates first-aid content through an external,
// unreliable translation capability. Every string is translated on its own;
// a string whose translation fails keeps its original text, so partial
// failure never blanks out content.
package translation

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/logging"
)

const (
	DefaultTimeout     = 10 * time.Second
	DefaultConcurrency = 8
)

// Compile-time check to ensure Adapter implements RecordTranslator
var _ interfaces.RecordTranslator = (*Adapter)(nil)

// Options configures an Adapter. Zero values select the defaults.
type Options struct {
	SourceLanguage string
	Timeout        time.Duration
	Concurrency    int
}

// Adapter fans translation calls out across the strings of a record
type Adapter struct {
	translator  interfaces.Translator
	source      string
	timeout     time.Duration
	concurrency int
}

// NewAdapter creates an adapter around translator
func NewAdapter(translator interfaces.Translator, opts Options) *Adapter {
	if translator == nil {
		translator = NoopTranslator{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	return &Adapter{
		translator:  translator,
		source:      NormalizeLanguage(opts.SourceLanguage, DefaultSourceLanguage),
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
	}
}

// SourceLanguage returns the normalized language of untranslated content
func (a *Adapter) SourceLanguage() string {
	return a.source
}

// IsSource reports whether target needs no translation
func (a *Adapter) IsSource(target string) bool {
	return NormalizeLanguage(target, a.source) == a.source
}

// TranslateRecord returns a copy of record with the title and every list item
// translated into target. List order and length are preserved. When target is
// the source language the record is returned as is and no call is made.
func (a *Adapter) TranslateRecord(ctx context.Context, record entities.ConditionRecord, target string) entities.ConditionRecord {
	if a.IsSource(target) {
		return record
	}
	target = NormalizeLanguage(target, a.source)

	out := record.Clone()
	fields := []*string{&out.Title}
	for _, list := range [][]string{out.Steps, out.DoNot, out.SeekHelpIf, out.Symptoms, out.Recommendations} {
		for i := range list {
			fields = append(fields, &list[i])
		}
	}

	failed := a.translateAll(ctx, fields, target)
	if failed > 0 {
		logging.Warn("Partial translation, kept original text for failed items",
			"condition", record.ID,
			"target_language", target,
			"failed", failed,
			"total", len(fields),
		)
	}

	return out
}

// TranslateResponse translates whichever variant of response is active.
// Only the content message of a fallback is translated.
func (a *Adapter) TranslateResponse(ctx context.Context, response entities.FirstAidResponse, target string) entities.FirstAidResponse {
	if a.IsSource(target) {
		return response
	}

	if response.Matched {
		response.Record = a.TranslateRecord(ctx, response.Record, target)
		return response
	}

	target = NormalizeLanguage(target, a.source)
	fallback := response.Fallback
	fields := []*string{&fallback.Content}
	if a.translateAll(ctx, fields, target) > 0 {
		logging.Warn("Fallback message left untranslated", "target_language", target)
	}
	response.Fallback = fallback

	return response
}

// TranslateText translates a single free-text string. On failure the
// translated field carries the original text.
func (a *Adapter) TranslateText(ctx context.Context, text, target string) entities.TranslationResult {
	target = NormalizeLanguage(target, a.source)
	result := entities.TranslationResult{
		Original:       text,
		Translated:     text,
		TargetLanguage: target,
	}

	if target == a.source {
		return result
	}

	translated, ok := a.translateOne(ctx, text, target)
	if !ok {
		logging.Warn("Translation failed, returning original text", "target_language", target)
	}
	result.Translated = translated

	return result
}

// translateAll replaces every *field with its translation using at most
// a.concurrency concurrent calls, and returns how many fields kept their
// original text. Each goroutine owns exactly one pointer.
func (a *Adapter) translateAll(ctx context.Context, fields []*string, target string) int {
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
		sem    = make(chan struct{}, a.concurrency)
	)

	for _, field := range fields {
		if strings.TrimSpace(*field) == "" {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(field *string) {
			defer wg.Done()
			defer func() { <-sem }()

			translated, ok := a.translateOne(ctx, *field, target)
			if !ok {
				failed.Add(1)
			}
			*field = translated
		}(field)
	}

	wg.Wait()
	return int(failed.Load())
}

// translateOne performs one bounded external call. It returns the original
// text and false when the call fails, times out, or yields nothing.
func (a *Adapter) translateOne(ctx context.Context, text, target string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return text, true
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	translated, err := a.safeTranslate(callCtx, text, target)
	if err != nil {
		logging.Debug("Translation call failed", "target_language", target, "error", err)
		return text, false
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return text, false
	}

	return translated, true
}

// safeTranslate turns a panicking translator into an ordinary failure
func (a *Adapter) safeTranslate(ctx context.Context, text, target string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Translator panicked", "panic", r)
			out, err = "", ErrTranslationUnavailable
		}
	}()

	return a.translator.Translate(ctx, text, target)
}
