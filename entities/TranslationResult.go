package entities

// TranslationResult is the response of a single free-text translation.
// It is built per call and never stored.
type TranslationResult struct {
	Original       string `json:"original"`
	Translated     string `json:"translated"`
	TargetLanguage string `json:"target_language"`
}
