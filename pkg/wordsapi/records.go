package wordsapi

import (
	"encoding/json"
	"sort"
	"strings"
)

// Record is implemented by every typed result that belongs to a single
// relation endpoint. LookUp calls Relation on a new, non-nil pointer.
type Record interface {
	Relation() Relation
}

// Synonyms is the result of RelationSynonyms.
type Synonyms struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// Antonyms is the result of RelationAntonyms.
type Antonyms struct {
	Word     string   `json:"word"`
	Antonyms []string `json:"antonyms,omitempty"`
}

// Examples is the result of RelationExamples.
type Examples struct {
	Word     string   `json:"word"`
	Examples []string `json:"examples,omitempty"`
}

// Definitions is the result of RelationDefinitions.
type Definitions struct {
	Word        string       `json:"word"`
	Definitions []Definition `json:"definitions,omitempty"`
}

// Definition is a single definition with its part of speech.
type Definition struct {
	Definition   string  `json:"definition"`
	PartOfSpeech *string `json:"partOfSpeech,omitempty"`
}

// Rhymes is the result of RelationRhymes. Keys are "all" or a part of speech.
type Rhymes struct {
	Word   string              `json:"word"`
	Rhymes map[string][]string `json:"rhymes,omitempty"`
}

// Frequency is the result of RelationFrequency.
type Frequency struct {
	Word      string          `json:"word"`
	Frequency *FrequencyStats `json:"frequency,omitempty"`
}

// FrequencyStats describes how common a word is in English.
type FrequencyStats struct {
	Zipf       float64 `json:"zipf"`
	PerMillion float64 `json:"perMillion"`
	Diversity  float64 `json:"diversity"`
}

func (Synonyms) Relation() Relation    { return RelationSynonyms }
func (Antonyms) Relation() Relation    { return RelationAntonyms }
func (Examples) Relation() Relation    { return RelationExamples }
func (Definitions) Relation() Relation { return RelationDefinitions }
func (Rhymes) Relation() Relation      { return RelationRhymes }
func (Frequency) Relation() Relation   { return RelationFrequency }

func (s *Synonyms) UnmarshalJSON(data []byte) error {
	type alias Synonyms
	return decodeWithWord(data, (*alias)(s))
}

func (a *Antonyms) UnmarshalJSON(data []byte) error {
	type alias Antonyms
	return decodeWithWord(data, (*alias)(a))
}

func (e *Examples) UnmarshalJSON(data []byte) error {
	type alias Examples
	return decodeWithWord(data, (*alias)(e))
}

func (d *Definitions) UnmarshalJSON(data []byte) error {
	type alias Definitions
	return decodeWithWord(data, (*alias)(d))
}

func (r *Rhymes) UnmarshalJSON(data []byte) error {
	type alias Rhymes
	return decodeWithWord(data, (*alias)(r))
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	type alias Frequency
	return decodeWithWord(data, (*alias)(f))
}

// Related is the result of any list-valued relation without a dedicated
// record (isATypeOf, hasParts, inCategory, ...).
type Related struct {
	Word     string   `json:"word"`
	Relation Relation `json:"relation"`
	Words    []string `json:"words,omitempty"`
}

// relatedKeys lists the JSON keys the API may use for a relation's list.
// The endpoint name comes first.
var relatedKeys = map[Relation][]string{
	RelationIsATypeOf:      {"isATypeOf", "typeOf"},
	RelationIsAnInstanceOf: {"isAnInstanceOf", "instanceOf"},
	RelationIsAMemberOf:    {"isAMemberOf", "memberOf"},
	RelationIsASubstanceOf: {"isASubstanceOf", "substanceOf"},
	RelationHasAttribute:   {"hasAttribute", "attribute"},
}

func relatedKeysFor(rel Relation) []string {
	if keys, ok := relatedKeys[rel]; ok {
		return keys
	}
	return []string{rel.String()}
}

func decodeRelated(data []byte, rel Relation) (Related, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Related{}, err
	}

	rawWord, ok := lookupField(fields, "word")
	if !ok {
		return Related{}, missingField("word")
	}

	out := Related{Relation: rel}
	if err := json.Unmarshal(rawWord, &out.Word); err != nil {
		return Related{}, err
	}

	for _, key := range relatedKeysFor(rel) {
		raw, ok := lookupField(fields, key)
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &out.Words); err != nil {
			return Related{}, err
		}
		break
	}

	return out, nil
}

// lookupField finds key in fields case-insensitively, as encoding/json does
// for struct fields. An exact match is preferred.
func lookupField(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	if raw, ok := fields[key]; ok {
		return raw, true
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.EqualFold(name, key) {
			return fields[name], true
		}
	}
	return nil, false
}

// decodeWithWord decodes data into v after checking that "word" is present.
func decodeWithWord(data []byte, v any) error {
	var head struct {
		Word *string `json:"word"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Word == nil {
		return missingField("word")
	}
	return json.Unmarshal(data, v)
}
