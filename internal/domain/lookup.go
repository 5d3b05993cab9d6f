package domain

import (
	"time"

	"github.com/google/uuid"
)

// LookupOutcome classifies how a dictionary lookup ended.
type LookupOutcome string

const (
	LookupOutcomeOK           LookupOutcome = "OK"
	LookupOutcomeRequestError LookupOutcome = "REQUEST_ERROR"
	LookupOutcomeStatusError  LookupOutcome = "STATUS_ERROR"
)

func (o LookupOutcome) String() string { return string(o) }

func (o LookupOutcome) IsValid() bool {
	switch o {
	case LookupOutcomeOK, LookupOutcomeRequestError, LookupOutcomeStatusError:
		return true
	}
	return false
}

// LookupRecord is one journaled call to the dictionary API.
// Body holds the raw payload for successful and non-2xx responses;
// it is empty when the request never produced a response.
type LookupRecord struct {
	ID                 uuid.UUID
	RequestID          string
	Word               string
	Relation           string
	URL                string
	StatusCode         int
	Outcome            LookupOutcome
	RateLimitRemaining int
	RateLimitLimit     int
	Body               []byte
	Error              string
	Duration           time.Duration
	CreatedAt          time.Time
}

// Succeeded reports whether the lookup returned a 2xx response.
func (r LookupRecord) Succeeded() bool {
	return r.Outcome == LookupOutcomeOK
}
