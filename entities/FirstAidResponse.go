package entities

import "encoding/json"

// FallbackMessage is returned when no condition matches the query
const FallbackMessage = "No hardcoded steps available for this situation."

// FallbackRecord is the zero-confidence answer for unmatched queries.
type FallbackRecord struct {
	Content         string   `json:"content"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// NewFallbackRecord builds the fallback with an empty (non-nil) recommendation list
func NewFallbackRecord() FallbackRecord {
	return FallbackRecord{
		Content:         FallbackMessage,
		Confidence:      0.0,
		Recommendations: []string{},
	}
}

// FirstAidResponse is either a matched ConditionRecord or a FallbackRecord.
// It serializes as whichever of the two is active.
type FirstAidResponse struct {
	Matched  bool
	Record   ConditionRecord
	Fallback FallbackRecord
}

// MatchedResponse wraps a catalog record
func MatchedResponse(record ConditionRecord) FirstAidResponse {
	return FirstAidResponse{Matched: true, Record: record}
}

// FallbackResponse wraps the default fallback record
func FallbackResponse() FirstAidResponse {
	return FirstAidResponse{Fallback: NewFallbackRecord()}
}

// Confidence returns the confidence of the active variant
func (r FirstAidResponse) Confidence() float64 {
	if r.Matched {
		return r.Record.Confidence
	}
	return r.Fallback.Confidence
}

func (r FirstAidResponse) MarshalJSON() ([]byte, error) {
	if r.Matched {
		return json.Marshal(r.Record)
	}
	fallback := r.Fallback
	if fallback.Recommendations == nil {
		fallback.Recommendations = []string{}
	}
	return json.Marshal(fallback)
}
