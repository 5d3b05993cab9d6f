package lookup

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordsapi/internal/domain"
)

var _ journal = &journalMock{}

type journalMock struct {
	CreateFunc     func(ctx context.Context, rec domain.LookupRecord) error
	ListByWordFunc func(ctx context.Context, word string, limit int) ([]domain.LookupRecord, error)
	LatestFunc     func(ctx context.Context, word, relation string) (domain.LookupRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.LookupRecord
		}
		ListByWord []struct {
			Word  string
			Limit int
		}
		Latest []struct {
			Word     string
			Relation string
		}
	}
	lockCreate     sync.RWMutex
	lockListByWord sync.RWMutex
	lockLatest     sync.RWMutex
}

func (mock *journalMock) Create(ctx context.Context, rec domain.LookupRecord) error {
	if mock.CreateFunc == nil {
		panic("journalMock.CreateFunc: method is nil but journal.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.LookupRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *journalMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.LookupRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *journalMock) ListByWord(ctx context.Context, word string, limit int) ([]domain.LookupRecord, error) {
	if mock.ListByWordFunc == nil {
		panic("journalMock.ListByWordFunc: method is nil but journal.ListByWord was just called")
	}
	callInfo := struct {
		Word  string
		Limit int
	}{Word: word, Limit: limit}
	mock.lockListByWord.Lock()
	mock.calls.ListByWord = append(mock.calls.ListByWord, callInfo)
	mock.lockListByWord.Unlock()
	return mock.ListByWordFunc(ctx, word, limit)
}

func (mock *journalMock) ListByWordCalls() []struct {
	Word  string
	Limit int
} {
	mock.lockListByWord.RLock()
	calls := mock.calls.ListByWord
	mock.lockListByWord.RUnlock()
	return calls
}

func (mock *journalMock) Latest(ctx context.Context, word, relation string) (domain.LookupRecord, error) {
	if mock.LatestFunc == nil {
		panic("journalMock.LatestFunc: method is nil but journal.Latest was just called")
	}
	callInfo := struct {
		Word     string
		Relation string
	}{Word: word, Relation: relation}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, word, relation)
}

func (mock *journalMock) LatestCalls() []struct {
	Word     string
	Relation string
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}
