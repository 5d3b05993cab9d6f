// Package lookup runs dictionary lookups through the WordsAPI client and
// journals every call when a journal is configured.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/wordsapi/internal/domain"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

// ErrJournalDisabled is returned by history reads when no journal is configured.
var ErrJournalDisabled = errors.New("lookup journal is disabled")

const (
	journalTimeout = 5 * time.Second

	// maxParallel bounds concurrent API calls made by LookupMany.
	maxParallel = 4
)

type dictionaryClient interface {
	Lookup(ctx context.Context, word string, rel wordsapi.Relation) (*wordsapi.Response, error)
}

type journal interface {
	Create(ctx context.Context, rec domain.LookupRecord) error
	ListByWord(ctx context.Context, word string, limit int) ([]domain.LookupRecord, error)
	Latest(ctx context.Context, word, relation string) (domain.LookupRecord, error)
}

// Service provides journaled dictionary lookups.
type Service struct {
	client  dictionaryClient
	journal journal
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new lookup service. journal may be nil, in which case
// lookups are not recorded and history reads return ErrJournalDisabled.
func NewService(
	log *slog.Logger,
	client dictionaryClient,
	journal journal,
) *Service {
	return &Service{
		client:  client,
		journal: journal,
		log:     log.With("service", "lookup"),
		now:     time.Now,
	}
}

// JournalEnabled reports whether lookups are being recorded.
func (s *Service) JournalEnabled() bool { return s.journal != nil }
