package wordsapi

import (
	"fmt"
	"strings"
)

// Relation identifies the lexical relation requested from WordsAPI.
// Each relation maps to exactly one URL path suffix.
type Relation int

const (
	RelationWord Relation = iota
	RelationDefinitions
	RelationSynonyms
	RelationAntonyms
	RelationExamples
	RelationRhymes
	RelationFrequency
	RelationIsATypeOf
	RelationHasTypes
	RelationPartOf
	RelationHasParts
	RelationIsAnInstanceOf
	RelationHasInstances
	RelationInRegion
	RelationRegionOf
	RelationUsageOf
	RelationHasUsages
	RelationIsAMemberOf
	RelationHasMembers
	RelationIsASubstanceOf
	RelationHasSubstances
	RelationHasAttribute
	RelationInCategory
	RelationHasCategories
	RelationAlso
	RelationPertainsTo
	RelationSimilarTo
	RelationEntails

	relationCount
)

// relationNames holds the endpoint name of every relation. The suffix is
// "/" + name, except for RelationWord which has no suffix.
var relationNames = [...]string{
	RelationWord:           "word",
	RelationDefinitions:    "definitions",
	RelationSynonyms:       "synonyms",
	RelationAntonyms:       "antonyms",
	RelationExamples:       "examples",
	RelationRhymes:         "rhymes",
	RelationFrequency:      "frequency",
	RelationIsATypeOf:      "isATypeOf",
	RelationHasTypes:       "hasTypes",
	RelationPartOf:         "partOf",
	RelationHasParts:       "hasParts",
	RelationIsAnInstanceOf: "isAnInstanceOf",
	RelationHasInstances:   "hasInstances",
	RelationInRegion:       "inRegion",
	RelationRegionOf:       "regionOf",
	RelationUsageOf:        "usageOf",
	RelationHasUsages:      "hasUsages",
	RelationIsAMemberOf:    "isAMemberOf",
	RelationHasMembers:     "hasMembers",
	RelationIsASubstanceOf: "isASubstanceOf",
	RelationHasSubstances:  "hasSubstances",
	RelationHasAttribute:   "hasAttribute",
	RelationInCategory:     "inCategory",
	RelationHasCategories:  "hasCategories",
	RelationAlso:           "also",
	RelationPertainsTo:     "pertainsTo",
	RelationSimilarTo:      "similarTo",
	RelationEntails:        "entails",
}

// Fails to compile when a relation is added without a name.
var _ = [1]struct{}{}[len(relationNames)-int(relationCount)]

// Suffix returns the URL path suffix for r. RelationWord has an empty suffix.
func (r Relation) Suffix() string {
	if r == RelationWord || !r.Valid() {
		return ""
	}
	return "/" + relationNames[r]
}

// String returns the endpoint name of r, e.g. "synonyms" or "isATypeOf".
func (r Relation) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// Valid reports whether r is one of the declared relations.
func (r Relation) Valid() bool {
	return r >= RelationWord && r < relationCount
}

// Relations returns every relation in declaration order.
func Relations() []Relation {
	out := make([]Relation, 0, relationCount)
	for r := RelationWord; r < relationCount; r++ {
		out = append(out, r)
	}
	return out
}

// ParseRelation resolves a relation from its endpoint name, case-insensitively.
func ParseRelation(name string) (Relation, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	for r := RelationWord; r < relationCount; r++ {
		if strings.EqualFold(relationNames[r], name) {
			return r, nil
		}
	}
	return RelationWord, fmt.Errorf("%w: %q", ErrUnknownRelation, name)
}

// MarshalText implements encoding.TextMarshaler.
func (r Relation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("wordsapi: invalid relation %d", int(r))
	}
	return []byte(relationNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Relation) UnmarshalText(text []byte) error {
	parsed, err := ParseRelation(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
