package wordsapi

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a lookup matches exactly one of
// ErrRequest or ErrResultParse via errors.Is.
var (
	// ErrRequest indicates no usable HTTP response was obtained: the URL was
	// malformed, the transport failed, the body could not be read, or the
	// API answered with a non-2xx status.
	ErrRequest = errors.New("wordsapi: request failed")

	// ErrResultParse indicates the response body does not match the
	// requested record shape.
	ErrResultParse = errors.New("wordsapi: could not parse result")

	// ErrUnknownRelation is returned by ParseRelation for unknown names.
	ErrUnknownRelation = errors.New("wordsapi: unknown relation")
)

// RequestError describes a failure to obtain an HTTP response.
type RequestError struct {
	Op  string
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("wordsapi: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is reports ErrRequest so callers can classify without errors.As.
func (e *RequestError) Is(target error) bool { return target == ErrRequest }

// StatusError is returned when the API answers with a non-2xx status.
// The body and rate-limit counters are kept for diagnosis.
type StatusError struct {
	StatusCode int
	URL        string
	Body       []byte
	RateLimit  RateLimit
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wordsapi: unexpected status %d from %s", e.StatusCode, e.URL)
}

func (e *StatusError) Is(target error) bool { return target == ErrRequest }

// ParseError is returned when a body cannot be decoded into the target record.
type ParseError struct {
	Target string
	Body   []byte
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wordsapi: decode %s: %v", e.Target, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrResultParse }

// IsRateLimited reports whether err is a 429 answer from the API.
func IsRateLimited(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 429
}

// IsUnauthorized reports whether err is a 401 or 403 answer from the API.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == 401 || statusErr.StatusCode == 403
	}
	return false
}

// IsNotFound reports whether err is a 404 answer from the API.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}
