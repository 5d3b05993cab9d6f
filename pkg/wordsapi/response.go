package wordsapi

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Response is the raw result of a single lookup: the body as received and
// the rate-limit counters. Decoding is explicit and may be repeated.
type Response struct {
	Word       string
	Relation   Relation
	URL        string
	StatusCode int
	Body       []byte
	RateLimit  RateLimit
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals the body into v. A failure is reported as *ParseError,
// and r is left untouched so the body remains available.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &ParseError{Target: targetName(v), Body: r.Body, Err: err}
	}
	return nil
}

// Related decodes the body as a list of related words for r.Relation.
func (r *Response) Related() (Related, error) {
	out, err := decodeRelated(r.Body, r.Relation)
	if err != nil {
		return Related{}, &ParseError{Target: "Related(" + r.Relation.String() + ")", Body: r.Body, Err: err}
	}
	return out, nil
}

// DecodeRecord decodes the body into the record type that belongs to
// r.Relation: *WordRecord for RelationWord, the dedicated record for
// definitions, synonyms, antonyms, examples, rhymes and frequency, and
// Related for every other relation.
func (r *Response) DecodeRecord() (any, error) {
	switch r.Relation {
	case RelationWord:
		return DecodeAs[WordRecord](r)
	case RelationDefinitions:
		return DecodeAs[Definitions](r)
	case RelationSynonyms:
		return DecodeAs[Synonyms](r)
	case RelationAntonyms:
		return DecodeAs[Antonyms](r)
	case RelationExamples:
		return DecodeAs[Examples](r)
	case RelationRhymes:
		return DecodeAs[Rhymes](r)
	case RelationFrequency:
		return DecodeAs[Frequency](r)
	default:
		return r.Related()
	}
}

// DecodeAs decodes the body of r into a new T.
func DecodeAs[T any](r *Response) (T, error) {
	var out T
	if err := r.Decode(&out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Typed is a Response obtained for the relation of record type T.
type Typed[T any] struct {
	*Response
}

// Result decodes the body as T. Every call decodes afresh.
func (t *Typed[T]) Result() (T, error) {
	return DecodeAs[T](t.Response)
}

func targetName(v any) string {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return "<nil>"
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Name() == "" {
		return fmt.Sprint(typ)
	}
	return typ.Name()
}
