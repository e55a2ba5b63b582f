package entities

// SynonymEntry maps a lowercase phrase to a canonical condition identifier.
// A synonym table is an ordered []SynonymEntry: the first phrase found in the
// query wins, so the order of entries is part of the table's meaning.
type SynonymEntry struct {
	Phrase      string `json:"phrase"`
	ConditionID string `json:"condition"`
}
