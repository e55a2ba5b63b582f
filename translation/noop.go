package translation

import "context"

// NoopTranslator is used when no translation backend is configured.
// Every call reports ErrTranslationUnavailable, so content stays in the
// source language.
type NoopTranslator struct{}

func (NoopTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return "", ErrTranslationUnavailable
}
