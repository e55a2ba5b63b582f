// Package validation provides load-time integrity checks for the first-aid
// catalog and synonym table, plus light sanitation of user input.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/giygas/afyabuddy-api/entities"
)

const (
	maxIdentifierLength = 64
	maxLogTextLength    = 500
)

var (
	// Identifiers are lowercase words separated by single spaces
	identifierRegex = regexp.MustCompile(`^[a-z0-9]+( [a-z0-9]+)*$`)

	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"../", "..\\", "%2e%2e", "file://",
		"{$ne:", "{$gt:", "{$where:",
	}
)

// CatalogReport summarizes optional content that is missing from catalog records.
// None of these are load errors.
type CatalogReport struct {
	Records                  int
	Synonyms                 int
	WithoutProhibitions      []string
	WithoutEscalation        []string
	WithoutSymptoms          []string
	ConditionsWithoutSynonym []string
}

// CatalogValidator checks catalog records and synonym tables
type CatalogValidator struct{}

// NewCatalogValidator creates a new catalog validator
func NewCatalogValidator() *CatalogValidator {
	return &CatalogValidator{}
}

// ValidateRecord checks a single condition record
func (v *CatalogValidator) ValidateRecord(r *entities.ConditionRecord) error {
	if r == nil {
		return fmt.Errorf("condition record is nil")
	}

	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("condition identifier cannot be empty")
	}

	if len(r.ID) > maxIdentifierLength {
		return fmt.Errorf("condition identifier too long: %q (%d characters)", r.ID, len(r.ID))
	}

	if !identifierRegex.MatchString(r.ID) {
		return fmt.Errorf("condition identifier %q must be lowercase words separated by single spaces", r.ID)
	}

	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("empty title for condition %q", r.ID)
	}

	if len(r.Steps) == 0 {
		return fmt.Errorf("condition %q has no steps", r.ID)
	}

	if math.IsNaN(r.Confidence) || r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence for condition %q must be within [0,1], got: %v", r.ID, r.Confidence)
	}

	for field, items := range map[string][]string{
		"steps":           r.Steps,
		"do_not":          r.DoNot,
		"seek_help_if":    r.SeekHelpIf,
		"symptoms":        r.Symptoms,
		"recommendations": r.Recommendations,
	} {
		for i, item := range items {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("condition %q has an empty %s item at index %d", r.ID, field, i)
			}
		}
	}

	return nil
}

// ValidateCatalog checks every record and rejects duplicate identifiers
func (v *CatalogValidator) ValidateCatalog(records []entities.ConditionRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("catalog cannot be empty")
	}

	seen := make(map[string]int, len(records))
	for i := range records {
		if err := v.ValidateRecord(&records[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if first, exists := seen[records[i].ID]; exists {
			return fmt.Errorf("duplicate condition identifier %q at records %d and %d", records[i].ID, first, i)
		}
		seen[records[i].ID] = i
	}

	return nil
}

// ValidateSynonyms checks referential integrity of a synonym table against
// the set of known condition identifiers.
func (v *CatalogValidator) ValidateSynonyms(entries []entities.SynonymEntry, known func(id string) bool) error {
	if len(entries) == 0 {
		return fmt.Errorf("synonym table cannot be empty")
	}

	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Phrase) == "" {
			return fmt.Errorf("synonym %d has an empty phrase", i)
		}
		if entry.Phrase != strings.ToLower(entry.Phrase) {
			return fmt.Errorf("synonym %q must be lowercase", entry.Phrase)
		}
		if _, dup := seen[entry.Phrase]; dup {
			return fmt.Errorf("synonym %q is declared twice", entry.Phrase)
		}
		seen[entry.Phrase] = struct{}{}

		if !known(entry.ConditionID) {
			return fmt.Errorf("synonym %q references unknown condition %q", entry.Phrase, entry.ConditionID)
		}
	}

	return nil
}

// ReportCatalogQuality lists records missing optional content
func (v *CatalogValidator) ReportCatalogQuality(records []entities.ConditionRecord, entries []entities.SynonymEntry) *CatalogReport {
	report := &CatalogReport{
		Records:  len(records),
		Synonyms: len(entries),
	}

	referenced := make(map[string]bool, len(records))
	for _, entry := range entries {
		referenced[entry.ConditionID] = true
	}

	for _, r := range records {
		if len(r.DoNot) == 0 {
			report.WithoutProhibitions = append(report.WithoutProhibitions, r.ID)
		}
		if len(r.SeekHelpIf) == 0 {
			report.WithoutEscalation = append(report.WithoutEscalation, r.ID)
		}
		if len(r.Symptoms) == 0 {
			report.WithoutSymptoms = append(report.WithoutSymptoms, r.ID)
		}
		if !referenced[r.ID] {
			report.ConditionsWithoutSynonym = append(report.ConditionsWithoutSynonym, r.ID)
		}
	}

	return report
}

// ValidateConditionID validates an identifier taken from a URL path.
// It returns the normalized identifier.
func (v *CatalogValidator) ValidateConditionID(input string) (string, error) {
	id := strings.ToLower(strings.Join(strings.Fields(input), " "))
	if id == "" {
		return "", fmt.Errorf("condition cannot be empty")
	}

	if len(id) > maxIdentifierLength {
		return "", fmt.Errorf("condition too long: maximum %d characters", maxIdentifierLength)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return "", fmt.Errorf("input contains potentially dangerous content")
		}
	}

	if !identifierRegex.MatchString(id) {
		return "", fmt.Errorf("condition contains invalid characters. Only letters, numbers and spaces are allowed")
	}

	return id, nil
}

// SanitizeForLog truncates free text to a bounded number of runes and strips
// line breaks so it can be attached to a log record.
func SanitizeForLog(input string) string {
	input = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, input)

	if utf8.RuneCountInString(input) <= maxLogTextLength {
		return input
	}

	runes := []rune(input)
	return string(runes[:maxLogTextLength]) + "..."
}
