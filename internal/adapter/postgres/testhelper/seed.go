package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordsapi/internal/domain"
)

// UniqueWord returns a word that does not collide with other tests sharing
// the container.
func UniqueWord(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedLookup inserts a successful lookup journal row for word and relation
// created at the given time.
func SeedLookup(t *testing.T, pool *pgxpool.Pool, word, relation string, createdAt time.Time) domain.LookupRecord {
	t.Helper()

	rec := domain.LookupRecord{
		ID:                 uuid.New(),
		Word:               word,
		Relation:           relation,
		URL:                "https://wordsapiv1.p.mashape.com/words/" + word,
		StatusCode:         200,
		Outcome:            domain.LookupOutcomeOK,
		RateLimitRemaining: 99,
		RateLimitLimit:     100,
		Body:               []byte(`{"word":"` + word + `"}`),
		CreatedAt:          createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lookup_log (id, word, relation, url, status_code, outcome, rate_limit_remaining, rate_limit_limit, body, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.Word, rec.Relation, rec.URL, rec.StatusCode, string(rec.Outcome),
		rec.RateLimitRemaining, rec.RateLimitLimit, rec.Body, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLookup insert: %v", err)
	}

	return rec
}
