package wordsapi

import (
	"errors"
	"reflect"
	"testing"
)

func newResponse(rel Relation, body string) *Response {
	return &Response{Word: "test", Relation: rel, StatusCode: 200, Body: []byte(body)}
}

func TestDecode_Antonyms(t *testing.T) {
	t.Parallel()

	resp := newResponse(RelationAntonyms, `{"word":"silence","antonyms":["sound"]}`)

	got, err := DecodeAs[Antonyms](resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Word != "silence" {
		t.Errorf("Word = %q, want silence", got.Word)
	}
	if !reflect.DeepEqual(got.Antonyms, []string{"sound"}) {
		t.Errorf("Antonyms = %v, want [sound]", got.Antonyms)
	}
}

func TestDecode_Synonyms(t *testing.T) {
	t.Parallel()

	resp := newResponse(RelationSynonyms, `{"word":"practice","synonyms":["exercise","drill","praxis","pattern"]}`)

	got, err := DecodeAs[Synonyms](resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"exercise", "drill", "praxis", "pattern"}
	if got.Word != "practice" || !reflect.DeepEqual(got.Synonyms, want) {
		t.Errorf("got %+v, want word=practice synonyms=%v", got, want)
	}
}

func TestDecode_AbsentListStaysNil(t *testing.T) {
	t.Parallel()

	got, err := DecodeAs[Synonyms](newResponse(RelationSynonyms, `{"word":"zzz"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Synonyms != nil {
		t.Errorf("Synonyms = %v, want nil", got.Synonyms)
	}
}

func TestDecode_MissingWord(t *testing.T) {
	t.Parallel()

	_, err := DecodeAs[Antonyms](newResponse(RelationAntonyms, `{"antonyms":["sound"]}`))
	if !errors.Is(err, ErrResultParse) {
		t.Fatalf("error = %v, want ErrResultParse", err)
	}
}

func TestDecode_WordRecord(t *testing.T) {
	t.Parallel()

	body := `{
		"word": "example",
		"frequency": 4.67,
		"pronunciation": {"all": "ɪɡ'zæmpəl"},
		"syllables": {"count": 3, "list": ["ex", "am", "ple"]},
		"results": [
			{
				"definition": "a representative form or pattern",
				"partOfSpeech": "noun",
				"synonyms": ["illustration", "instance"],
				"typeOf": ["information"],
				"hasTypes": ["exemplar", "specimen"],
				"examples": ["I profited from his example"]
			},
			{
				"definition": "an item of information that is typical of a class"
			}
		]
	}`

	got, err := DecodeAs[WordRecord](newResponse(RelationWord, body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Word != "example" {
		t.Errorf("Word = %q, want example", got.Word)
	}
	if got.Frequency == nil || *got.Frequency != 4.67 {
		t.Errorf("Frequency = %v, want 4.67", got.Frequency)
	}
	if got.Pronunciation["all"] != "ɪɡ'zæmpəl" {
		t.Errorf("Pronunciation = %v", got.Pronunciation)
	}
	if got.Syllables == nil || got.Syllables.Count != 3 {
		t.Errorf("Syllables = %+v, want count 3", got.Syllables)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(got.Entries))
	}

	e0 := got.Entries[0]
	if e0.PartOfSpeech == nil || *e0.PartOfSpeech != "noun" {
		t.Errorf("Entries[0].PartOfSpeech = %v, want noun", e0.PartOfSpeech)
	}
	if !reflect.DeepEqual(e0.HasTypes, []string{"exemplar", "specimen"}) {
		t.Errorf("Entries[0].HasTypes = %v", e0.HasTypes)
	}
	if !reflect.DeepEqual(e0.TypeOf, []string{"information"}) {
		t.Errorf("Entries[0].TypeOf = %v", e0.TypeOf)
	}

	e1 := got.Entries[1]
	if e1.PartOfSpeech != nil {
		t.Errorf("Entries[1].PartOfSpeech = %v, want nil", *e1.PartOfSpeech)
	}
	if e1.Synonyms != nil || e1.Antonyms != nil || e1.Examples != nil {
		t.Errorf("Entries[1] relation lists should be nil, got %+v", e1)
	}
}

func TestDecode_WordRecord_StringPronunciation(t *testing.T) {
	t.Parallel()

	body := `{"word":"a","pronunciation":"eɪ","results":[]}`

	got, err := DecodeAs[WordRecord](newResponse(RelationWord, body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Pronunciation["all"] != "eɪ" {
		t.Errorf("Pronunciation = %v, want all=eɪ", got.Pronunciation)
	}
}

func TestDecode_WordRecord_MissingDefinition(t *testing.T) {
	t.Parallel()

	body := `{"word":"broken","results":[{"partOfSpeech":"adjective"}]}`
	resp := newResponse(RelationWord, body)

	_, err := DecodeAs[WordRecord](resp)
	if !errors.Is(err, ErrResultParse) {
		t.Fatalf("error = %v, want ErrResultParse", err)
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if string(parseErr.Body) != body {
		t.Errorf("ParseError.Body = %q, want original body", parseErr.Body)
	}
	if parseErr.Target != "WordRecord" {
		t.Errorf("ParseError.Target = %q, want WordRecord", parseErr.Target)
	}
	if resp.Text() != body {
		t.Errorf("Text() = %q, want original body", resp.Text())
	}
}

func TestDecode_WordRecord_MissingResults(t *testing.T) {
	t.Parallel()

	_, err := DecodeAs[WordRecord](newResponse(RelationWord, `{"word":"x"}`))
	if !errors.Is(err, ErrResultParse) {
		t.Fatalf("error = %v, want ErrResultParse", err)
	}
}

func TestDecode_WrongType(t *testing.T) {
	t.Parallel()

	_, err := DecodeAs[Synonyms](newResponse(RelationSynonyms, `{"word":"x","synonyms":"not-a-list"}`))
	if !errors.Is(err, ErrResultParse) {
		t.Fatalf("error = %v, want ErrResultParse", err)
	}
	if errors.Is(err, ErrRequest) {
		t.Error("parse error must not match ErrRequest")
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	t.Parallel()

	resp := newResponse(RelationWord, `{not json`)

	for _, decode := range []func() error{
		func() error { _, err := DecodeAs[WordRecord](resp); return err },
		func() error { _, err := DecodeAs[Synonyms](resp); return err },
		func() error { _, err := resp.Related(); return err },
	} {
		if err := decode(); !errors.Is(err, ErrResultParse) {
			t.Errorf("error = %v, want ErrResultParse", err)
		}
	}
	if resp.Text() != `{not json` {
		t.Errorf("Text() = %q, want raw body", resp.Text())
	}
}

func TestDecode_Idempotent(t *testing.T) {
	t.Parallel()

	resp := newResponse(RelationWord, `{"word":"run","frequency":5.1,"results":[{"definition":"move fast","synonyms":["sprint"]}]}`)

	first, err := DecodeAs[WordRecord](resp)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := DecodeAs[WordRecord](resp)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("decodes differ:\n%+v\n%+v", first, second)
	}
}

func TestDecode_NarrowRecords(t *testing.T) {
	t.Parallel()

	t.Run("definitions", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeAs[Definitions](newResponse(RelationDefinitions,
			`{"word":"bank","definitions":[{"definition":"a financial institution","partOfSpeech":"noun"},{"definition":"tip laterally"}]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Definitions) != 2 {
			t.Fatalf("len(Definitions) = %d, want 2", len(got.Definitions))
		}
		if got.Definitions[0].PartOfSpeech == nil || *got.Definitions[0].PartOfSpeech != "noun" {
			t.Errorf("Definitions[0].PartOfSpeech = %v, want noun", got.Definitions[0].PartOfSpeech)
		}
		if got.Definitions[1].PartOfSpeech != nil {
			t.Errorf("Definitions[1].PartOfSpeech = %v, want nil", *got.Definitions[1].PartOfSpeech)
		}
	})

	t.Run("examples", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeAs[Examples](newResponse(RelationExamples, `{"word":"hat","examples":["she wore a hat"]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.Examples, []string{"she wore a hat"}) {
			t.Errorf("Examples = %v", got.Examples)
		}
	})

	t.Run("rhymes", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeAs[Rhymes](newResponse(RelationRhymes, `{"word":"grate","rhymes":{"all":["abate","debate"]}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.Rhymes["all"], []string{"abate", "debate"}) {
			t.Errorf("Rhymes = %v", got.Rhymes)
		}
	})

	t.Run("frequency", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeAs[Frequency](newResponse(RelationFrequency, `{"word":"eat","frequency":{"zipf":5.01,"perMillion":102.3,"diversity":0.67}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := FrequencyStats{Zipf: 5.01, PerMillion: 102.3, Diversity: 0.67}
		if got.Frequency == nil || *got.Frequency != want {
			t.Errorf("Frequency = %+v, want %+v", got.Frequency, want)
		}
	})
}

func TestResponse_Related(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rel  Relation
		body string
		want []string
	}{
		{
			name: "endpoint key",
			rel:  RelationHasParts,
			body: `{"word":"car","hasParts":["wheel","engine"]}`,
			want: []string{"wheel", "engine"},
		},
		{
			name: "api alias key",
			rel:  RelationIsATypeOf,
			body: `{"word":"hatchback","typeOf":["car"]}`,
			want: []string{"car"},
		},
		{
			name: "keys in another case",
			rel:  RelationHasParts,
			body: `{"WORD":"car","HasParts":["wheel"]}`,
			want: []string{"wheel"},
		},
		{
			name: "absent list",
			rel:  RelationEntails,
			body: `{"word":"snore"}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := newResponse(tt.rel, tt.body).Related()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Relation != tt.rel {
				t.Errorf("Relation = %s, want %s", got.Relation, tt.rel)
			}
			if !reflect.DeepEqual(got.Words, tt.want) {
				t.Errorf("Words = %v, want %v", got.Words, tt.want)
			}
		})
	}
}

func TestResponse_Related_MissingWord(t *testing.T) {
	t.Parallel()

	_, err := newResponse(RelationAlso, `{"also":["x"]}`).Related()
	if !errors.Is(err, ErrResultParse) {
		t.Fatalf("error = %v, want ErrResultParse", err)
	}
}

func TestDecode_WordKeyCaseMatchesAcrossDecoders(t *testing.T) {
	t.Parallel()

	body := `{"Word":"hot","synonyms":["warm"],"also":["heated"]}`

	syn, err := DecodeAs[Synonyms](newResponse(RelationSynonyms, body))
	if err != nil {
		t.Fatalf("DecodeAs[Synonyms]: %v", err)
	}
	rel, err := newResponse(RelationAlso, body).Related()
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if syn.Word != "hot" || rel.Word != "hot" {
		t.Errorf("words = %q / %q, want hot for both", syn.Word, rel.Word)
	}

	missing := `{"words":"hot","also":["heated"]}`
	if _, err := DecodeAs[Synonyms](newResponse(RelationSynonyms, missing)); !errors.Is(err, ErrResultParse) {
		t.Errorf("DecodeAs[Synonyms] error = %v, want ErrResultParse", err)
	}
	if _, err := newResponse(RelationAlso, missing).Related(); !errors.Is(err, ErrResultParse) {
		t.Errorf("Related error = %v, want ErrResultParse", err)
	}
}

func TestTyped_Result(t *testing.T) {
	t.Parallel()

	typed := &Typed[Antonyms]{Response: newResponse(RelationAntonyms, `{"word":"hot","antonyms":["cold"]}`)}

	for i := 0; i < 2; i++ {
		got, err := typed.Result()
		if err != nil {
			t.Fatalf("Result() #%d: %v", i, err)
		}
		if got.Word != "hot" || !reflect.DeepEqual(got.Antonyms, []string{"cold"}) {
			t.Errorf("Result() #%d = %+v", i, got)
		}
	}
}

func TestRecord_Relations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rec  Record
		want Relation
	}{
		{WordRecord{}, RelationWord},
		{Definitions{}, RelationDefinitions},
		{Synonyms{}, RelationSynonyms},
		{Antonyms{}, RelationAntonyms},
		{Examples{}, RelationExamples},
		{Rhymes{}, RelationRhymes},
		{Frequency{}, RelationFrequency},
	}

	for _, tt := range tests {
		if got := tt.rec.Relation(); got != tt.want {
			t.Errorf("%T.Relation() = %s, want %s", tt.rec, got, tt.want)
		}
	}
}

func TestResponse_DecodeRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  Relation
		body string
		want any
	}{
		{RelationSynonyms, `{"word":"a","synonyms":["b"]}`, Synonyms{Word: "a", Synonyms: []string{"b"}}},
		{RelationAntonyms, `{"word":"a","antonyms":["c"]}`, Antonyms{Word: "a", Antonyms: []string{"c"}}},
		{RelationExamples, `{"word":"a","examples":["an a"]}`, Examples{Word: "a", Examples: []string{"an a"}}},
		{RelationRhymes, `{"word":"a","rhymes":{"all":["day"]}}`, Rhymes{Word: "a", Rhymes: map[string][]string{"all": {"day"}}}},
		{RelationFrequency, `{"word":"a","frequency":{"zipf":7.1,"perMillion":1,"diversity":0.5}}`,
			Frequency{Word: "a", Frequency: &FrequencyStats{Zipf: 7.1, PerMillion: 1, Diversity: 0.5}}},
		{RelationDefinitions, `{"word":"a","definitions":[{"definition":"first letter"}]}`,
			Definitions{Word: "a", Definitions: []Definition{{Definition: "first letter"}}}},
		{RelationHasParts, `{"word":"car","hasParts":["wheel"]}`, Related{Word: "car", Relation: RelationHasParts, Words: []string{"wheel"}}},
	}

	for _, tt := range tests {
		t.Run(tt.rel.String(), func(t *testing.T) {
			t.Parallel()
			got, err := newResponse(tt.rel, tt.body).DecodeRecord()
			if err != nil {
				t.Fatalf("DecodeRecord: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeRecord = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestResponse_DecodeRecord_Word(t *testing.T) {
	t.Parallel()

	got, err := newResponse(RelationWord, `{"word":"a","results":[{"definition":"first letter"}]}`).DecodeRecord()
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	rec, ok := got.(WordRecord)
	if !ok {
		t.Fatalf("DecodeRecord returned %T, want WordRecord", got)
	}
	if len(rec.Entries) != 1 || rec.Entries[0].Definition != "first letter" {
		t.Errorf("Entries = %+v", rec.Entries)
	}

	if _, err := newResponse(RelationWord, `{"word":"a"}`).DecodeRecord(); !errors.Is(err, ErrResultParse) {
		t.Errorf("DecodeRecord without results error = %v, want ErrResultParse", err)
	}
}
