package translation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/metrics"
)

// InstrumentedTranslator records Prometheus metrics around another translator
type InstrumentedTranslator struct {
	next interfaces.Translator
}

// NewInstrumentedTranslator wraps next
func NewInstrumentedTranslator(next interfaces.Translator) *InstrumentedTranslator {
	return &InstrumentedTranslator{next: next}
}

func (t *InstrumentedTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	start := time.Now()
	out, err := t.next.Translate(ctx, text, targetLanguage)
	metrics.TranslationDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil && errors.Is(err, context.DeadlineExceeded):
		metrics.TranslationRequests.WithLabelValues(metrics.TranslationTimeout).Inc()
	case err != nil:
		metrics.TranslationRequests.WithLabelValues(metrics.TranslationError).Inc()
	case strings.TrimSpace(out) == "":
		metrics.TranslationRequests.WithLabelValues(metrics.TranslationEmpty).Inc()
	default:
		metrics.TranslationRequests.WithLabelValues(metrics.TranslationOK).Inc()
	}

	return out, err
}
