package wordsapi

import (
	"encoding/json"
	"fmt"
)

// WordRecord is the full lexical entry returned for RelationWord.
type WordRecord struct {
	Word          string        `json:"word"`
	Frequency     *float64      `json:"frequency,omitempty"`
	Pronunciation Pronunciation `json:"pronunciation,omitempty"`
	Entries       []Entry       `json:"results"`
	Syllables     *Syllables    `json:"syllables,omitempty"`
}

// Entry is one sense of a word. Relation lists are nil when the API omits them.
type Entry struct {
	Definition    string   `json:"definition"`
	PartOfSpeech  *string  `json:"partOfSpeech,omitempty"`
	Derivation    []string `json:"derivation,omitempty"`
	HasSubstances []string `json:"hasSubstances,omitempty"`
	SubstanceOf   []string `json:"substanceOf,omitempty"`
	TypeOf        []string `json:"typeOf,omitempty"`
	VerbGroup     []string `json:"verbGroup,omitempty"`
	HasTypes      []string `json:"hasTypes,omitempty"`
	HasParts      []string `json:"hasParts,omitempty"`
	PartOf        []string `json:"partOf,omitempty"`
	MemberOf      []string `json:"memberOf,omitempty"`
	HasMembers    []string `json:"hasMembers,omitempty"`
	InstanceOf    []string `json:"instanceOf,omitempty"`
	HasInstances  []string `json:"hasInstances,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Antonyms      []string `json:"antonyms,omitempty"`
	Examples      []string `json:"examples,omitempty"`
	SimilarTo     []string `json:"similarTo,omitempty"`
	PertainsTo    []string `json:"pertainsTo,omitempty"`
	Also          []string `json:"also,omitempty"`
	Entails       []string `json:"entails,omitempty"`
	Attribute     []string `json:"attribute,omitempty"`
	InCategory    []string `json:"inCategory,omitempty"`
	HasCategories []string `json:"hasCategories,omitempty"`
	UsageOf       []string `json:"usageOf,omitempty"`
	HasUsages     []string `json:"hasUsages,omitempty"`
	InRegion      []string `json:"inRegion,omitempty"`
	RegionOf      []string `json:"regionOf,omitempty"`
}

// Syllables is the syllable breakdown of a word.
type Syllables struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

// Pronunciation maps a phonetic system or part of speech ("all", "noun",
// "verb") to a transcription. The API sometimes sends a bare string; it is
// stored under the "all" key.
type Pronunciation map[string]string

// UnmarshalJSON accepts both the object and the bare string form.
func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Pronunciation{"all": s}
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = m
	return nil
}

// Relation implements Record.
func (WordRecord) Relation() Relation { return RelationWord }

// UnmarshalJSON enforces the required "word" and "results" fields.
func (w *WordRecord) UnmarshalJSON(data []byte) error {
	type alias WordRecord
	aux := struct {
		Word    *string  `json:"word"`
		Entries *[]Entry `json:"results"`
		*alias
	}{alias: (*alias)(w)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Word == nil {
		return missingField("word")
	}
	if aux.Entries == nil {
		return missingField("results")
	}
	w.Word = *aux.Word
	w.Entries = *aux.Entries
	return nil
}

// UnmarshalJSON enforces the required "definition" field.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry
	aux := struct {
		Definition *string `json:"definition"`
		*alias
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Definition == nil {
		return missingField("definition")
	}
	e.Definition = *aux.Definition
	return nil
}

func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
