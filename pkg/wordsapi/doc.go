// Package wordsapi is a client for the WordsAPI dictionary service.
//
// A lookup sends one GET request for a word and a Relation and returns a
// Response holding the raw JSON body and the rate-limit counters reported by
// the API. Decoding into a typed record is a separate, explicit step that can
// be repeated:
//
//	client := wordsapi.NewClient(os.Getenv("WORDSAPI_KEY"))
//
//	resp, err := client.Lookup(ctx, "example", wordsapi.RelationSynonyms)
//	if err != nil {
//		return err // errors.Is(err, wordsapi.ErrRequest)
//	}
//	syn, err := wordsapi.DecodeAs[wordsapi.Synonyms](resp)
//	if err != nil {
//		return err // errors.Is(err, wordsapi.ErrResultParse); resp.Text() still holds the body
//	}
//
// LookUp picks the relation from the record type:
//
//	typed, err := wordsapi.LookUp[wordsapi.Antonyms](ctx, client, "silence")
//	ant, err := typed.Result()
//
// Rate-limit counters are observed only; the client never throttles or retries.
package wordsapi
