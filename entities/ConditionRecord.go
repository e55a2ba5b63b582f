package entities

// ConditionRecord is the structured first-aid answer for one canonical condition.
// DoNot holds prohibitions and SeekHelpIf holds escalation criteria.
type ConditionRecord struct {
	ID              string   `json:"condition"`
	Title           string   `json:"title"`
	Steps           []string `json:"steps"`
	DoNot           []string `json:"do_not,omitempty"`
	SeekHelpIf      []string `json:"seek_help_if,omitempty"`
	Symptoms        []string `json:"symptoms,omitempty"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// Clone returns a deep copy so the catalog's backing slices never escape.
func (r ConditionRecord) Clone() ConditionRecord {
	r.Steps = cloneStrings(r.Steps)
	r.DoNot = cloneStrings(r.DoNot)
	r.SeekHelpIf = cloneStrings(r.SeekHelpIf)
	r.Symptoms = cloneStrings(r.Symptoms)
	r.Recommendations = cloneStrings(r.Recommendations)
	return r
}

// ConditionSummary is the short form used when listing the catalog
type ConditionSummary struct {
	ID         string  `json:"condition"`
	Title      string  `json:"title"`
	Confidence float64 `json:"confidence"`
}

// Summary returns the listing form of the record
func (r ConditionRecord) Summary() ConditionSummary {
	return ConditionSummary{ID: r.ID, Title: r.Title, Confidence: r.Confidence}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
