package lookup

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wordsapi/internal/domain"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

// History returns journaled lookups of word, newest first.
func (s *Service) History(ctx context.Context, word string, limit int) ([]domain.LookupRecord, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}

	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must be non-negative")
	}

	records, err := s.journal.ListByWord(ctx, normalized, limit)
	if err != nil {
		return nil, fmt.Errorf("list lookup history: %w", err)
	}

	return records, nil
}

// Latest returns the most recent journaled lookup of word for rel.
func (s *Service) Latest(ctx context.Context, word string, rel wordsapi.Relation) (domain.LookupRecord, error) {
	if s.journal == nil {
		return domain.LookupRecord{}, ErrJournalDisabled
	}

	normalized, err := validate(word, rel)
	if err != nil {
		return domain.LookupRecord{}, err
	}

	rec, err := s.journal.Latest(ctx, normalized, rel.String())
	if err != nil {
		return domain.LookupRecord{}, fmt.Errorf("latest lookup: %w", err)
	}

	return rec, nil
}
