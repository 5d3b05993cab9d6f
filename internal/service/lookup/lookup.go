package lookup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordsapi/internal/domain"
	"github.com/heartmarshall/wordsapi/pkg/ctxutil"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

// Lookup normalizes word, performs one API call for rel and journals it.
// Errors from the client are returned unchanged. A journal failure is
// logged and never fails the lookup.
func (s *Service) Lookup(ctx context.Context, word string, rel wordsapi.Relation) (*wordsapi.Response, error) {
	normalized, err := validate(word, rel)
	if err != nil {
		return nil, err
	}

	ctx, requestID := ctxutil.EnsureRequestID(ctx)

	start := s.now()
	resp, err := s.client.Lookup(ctx, normalized, rel)
	elapsed := s.now().Sub(start)

	s.record(ctx, newRecord(requestID, normalized, rel, resp, err, elapsed, start))

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// LookupMany looks word up for every relation concurrently. Results are in
// the order of rels. The first failure cancels the remaining calls and is
// returned.
func (s *Service) LookupMany(ctx context.Context, word string, rels []wordsapi.Relation) ([]*wordsapi.Response, error) {
	if len(rels) == 0 {
		return nil, domain.NewValidationError("relations", "at least one required")
	}
	for _, rel := range rels {
		if _, err := validate(word, rel); err != nil {
			return nil, err
		}
	}

	ctx, _ = ctxutil.EnsureRequestID(ctx)

	results := make([]*wordsapi.Response, len(rels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, rel := range rels {
		g.Go(func() error {
			resp, err := s.Lookup(gctx, word, rel)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func validate(word string, rel wordsapi.Relation) (string, error) {
	var errs []domain.FieldError

	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if !rel.Valid() {
		errs = append(errs, domain.FieldError{Field: "relation", Message: "unknown relation " + rel.String()})
	}

	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return normalized, nil
}

// newRecord classifies the outcome of one client call.
func newRecord(requestID, word string, rel wordsapi.Relation, resp *wordsapi.Response, err error, elapsed time.Duration, at time.Time) domain.LookupRecord {
	rec := domain.LookupRecord{
		RequestID: requestID,
		Word:      word,
		Relation:  rel.String(),
		Duration:  elapsed,
		CreatedAt: at.UTC(),
	}

	var statusErr *wordsapi.StatusError
	var reqErr *wordsapi.RequestError
	switch {
	case err == nil && resp != nil:
		rec.Outcome = domain.LookupOutcomeOK
		rec.URL = resp.URL
		rec.StatusCode = resp.StatusCode
		rec.Body = resp.Body
		rec.RateLimitRemaining = resp.RateLimit.Remaining
		rec.RateLimitLimit = resp.RateLimit.Limit
	case errors.As(err, &statusErr):
		rec.Outcome = domain.LookupOutcomeStatusError
		rec.URL = statusErr.URL
		rec.StatusCode = statusErr.StatusCode
		rec.Body = statusErr.Body
		rec.RateLimitRemaining = statusErr.RateLimit.Remaining
		rec.RateLimitLimit = statusErr.RateLimit.Limit
		rec.Error = err.Error()
	case errors.As(err, &reqErr):
		rec.Outcome = domain.LookupOutcomeRequestError
		rec.URL = reqErr.URL
		rec.Error = err.Error()
	default:
		rec.Outcome = domain.LookupOutcomeRequestError
		if err != nil {
			rec.Error = err.Error()
		}
	}

	return rec
}

// record writes rec to the journal on a context that survives cancellation
// of the lookup itself.
func (s *Service) record(ctx context.Context, rec domain.LookupRecord) {
	if s.journal == nil {
		return
	}

	jctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()

	if err := s.journal.Create(jctx, rec); err != nil {
		s.log.WarnContext(ctx, "journal lookup failed",
			slog.String("word", rec.Word),
			slog.String("relation", rec.Relation),
			slog.String("request_id", rec.RequestID),
			slog.String("error", err.Error()),
		)
	}
}
