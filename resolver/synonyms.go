package resolver

import "github.com/giygas/afyabuddy-api/entities"

// DefaultSynonyms returns the built-in synonym table. Order matters: the
// resolver returns the condition of the first phrase contained in the query.
func DefaultSynonyms() []entities.SynonymEntry {
	return []entities.SynonymEntry{
		{Phrase: "low blood sugar", ConditionID: "low blood sugar"},
		{Phrase: "hypoglycemia", ConditionID: "low blood sugar"},
		{Phrase: "diabetic episode", ConditionID: "low blood sugar"},
		{Phrase: "burn", ConditionID: "burn"},
		{Phrase: "choking", ConditionID: "choking"},
		{Phrase: "bleeding", ConditionID: "bleeding"},
		{Phrase: "snake bite", ConditionID: "snake bite"},
		{Phrase: "asthma", ConditionID: "asthma"},
		{Phrase: "asthma attack", ConditionID: "asthma"},
		{Phrase: "heart attack", ConditionID: "heart attack"},
		{Phrase: "stroke", ConditionID: "stroke"},
		{Phrase: "seizure", ConditionID: "seizure"},
		{Phrase: "nosebleed", ConditionID: "nosebleed"},
		{Phrase: "anaphylaxis", ConditionID: "anaphylaxis"},
	}
}
