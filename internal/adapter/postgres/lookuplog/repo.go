// Package lookuplog implements the lookup journal repository using PostgreSQL.
// It provides append-only writes and newest-first reads of lookup records.
package lookuplog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordsapi/internal/adapter/postgres"
	"github.com/heartmarshall/wordsapi/internal/domain"
)

const (
	table = "lookup_log"

	// DefaultLimit is used by ListByWord when limit is not positive.
	DefaultLimit = 20
	// MaxLimit caps the number of rows ListByWord returns.
	MaxLimit = 100
)

var columns = []string{
	"id", "request_id", "word", "relation", "url", "status_code", "outcome",
	"rate_limit_remaining", "rate_limit_limit", "body", "error_message",
	"duration_ms", "created_at",
}

// wordMatches compares words the way the lower(word) indexes do.
const wordMatches = "lower(word) = lower(?)"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides lookup journal persistence backed by PostgreSQL.
type Repo struct {
	q   postgres.Querier
	now func() time.Time
}

// New creates a new lookup journal repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q, now: time.Now}
}

// row mirrors one lookup_log row for scanning.
type row struct {
	ID                 uuid.UUID `db:"id"`
	RequestID          string    `db:"request_id"`
	Word               string    `db:"word"`
	Relation           string    `db:"relation"`
	URL                string    `db:"url"`
	StatusCode         int32     `db:"status_code"`
	Outcome            string    `db:"outcome"`
	RateLimitRemaining int32     `db:"rate_limit_remaining"`
	RateLimitLimit     int32     `db:"rate_limit_limit"`
	Body               []byte    `db:"body"`
	ErrorMessage       string    `db:"error_message"`
	DurationMS         int64     `db:"duration_ms"`
	CreatedAt          time.Time `db:"created_at"`
}

func (r row) toDomain() domain.LookupRecord {
	return domain.LookupRecord{
		ID:                 r.ID,
		RequestID:          r.RequestID,
		Word:               r.Word,
		Relation:           r.Relation,
		URL:                r.URL,
		StatusCode:         int(r.StatusCode),
		Outcome:            domain.LookupOutcome(r.Outcome),
		RateLimitRemaining: int(r.RateLimitRemaining),
		RateLimitLimit:     int(r.RateLimitLimit),
		Body:               r.Body,
		Error:              r.ErrorMessage,
		Duration:           time.Duration(r.DurationMS) * time.Millisecond,
		CreatedAt:          r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends one lookup record. A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, rec domain.LookupRecord) error {
	var errs []domain.FieldError
	if rec.Word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if rec.Relation == "" {
		errs = append(errs, domain.FieldError{Field: "relation", Message: "required"})
	}
	if !rec.Outcome.IsValid() {
		errs = append(errs, domain.FieldError{Field: "outcome", Message: fmt.Sprintf("unknown outcome %q", rec.Outcome)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now().UTC()
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.RequestID, rec.Word, rec.Relation, rec.URL,
			int32(rec.StatusCode), string(rec.Outcome),
			int32(rec.RateLimitRemaining), int32(rec.RateLimitLimit),
			rec.Body, rec.Error, rec.Duration.Milliseconds(), rec.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("lookup_log build insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, rec.ID.String())
	}

	return nil
}

// DeleteBefore removes records created before threshold and returns how many
// rows were deleted.
func (r *Repo) DeleteBefore(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := psql.Delete(table).
		Where(squirrel.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("lookup_log build delete: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, table, "created_at < "+threshold.Format(time.RFC3339))
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByWord returns the journal for word, newest first. Words match
// case-insensitively. A non-positive limit means DefaultLimit; limits above
// MaxLimit are capped.
func (r *Repo) ListByWord(ctx context.Context, word string, limit int) ([]domain.LookupRecord, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(wordMatches, word).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(ClampLimit(limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("lookup_log build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, table, word)
	}

	records := make([]domain.LookupRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}

	return records, nil
}

// Latest returns the most recent record for word (any case) and relation, or
// domain.ErrNotFound when the pair was never looked up.
func (r *Repo) Latest(ctx context.Context, word, relation string) (domain.LookupRecord, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"relation": relation}).
		Where(wordMatches, word).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.LookupRecord{}, fmt.Errorf("lookup_log build select: %w", err)
	}

	var got row
	if err := pgxscan.Get(ctx, r.q, &got, query, args...); err != nil {
		key := word + "/" + relation
		if pgxscan.NotFound(err) {
			return domain.LookupRecord{}, fmt.Errorf("%s %s: %w", table, key, domain.ErrNotFound)
		}
		return domain.LookupRecord{}, postgres.MapError(err, table, key)
	}

	return got.toDomain(), nil
}

// ClampLimit applies the ListByWord limit rules.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
