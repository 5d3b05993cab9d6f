package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/wordsapi/internal/domain"
	"github.com/heartmarshall/wordsapi/internal/service/lookup"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

// Exit codes reported by the wordsapi binary.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitValidation    = 2
	ExitNotFound      = 3
	ExitJournalOff    = 4
	ExitUnauthorized  = 5
	ExitRateLimited   = 6
	ExitRequestFailed = 7
	ExitParseFailed   = 8
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrValidation):
		return ExitValidation
	case errors.Is(err, lookup.ErrJournalDisabled):
		return ExitJournalOff
	case errors.Is(err, domain.ErrNotFound), wordsapi.IsNotFound(err):
		return ExitNotFound
	case wordsapi.IsUnauthorized(err):
		return ExitUnauthorized
	case wordsapi.IsRateLimited(err):
		return ExitRateLimited
	case errors.Is(err, wordsapi.ErrRequest):
		return ExitRequestFailed
	case errors.Is(err, wordsapi.ErrResultParse):
		return ExitParseFailed
	default:
		return ExitFailure
	}
}

// Describe renders err for the terminal. Validation errors list every field;
// status errors include the response body.
func Describe(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		parts := make([]string, len(ve.Errors))
		for i, fe := range ve.Errors {
			parts[i] = fe.Field + ": " + fe.Message
		}
		return "invalid input: " + strings.Join(parts, "; ")
	}

	if errors.Is(err, lookup.ErrJournalDisabled) {
		return "history is unavailable: set DATABASE_DSN to record lookups"
	}

	var statusErr *wordsapi.StatusError
	if errors.As(err, &statusErr) && len(statusErr.Body) > 0 {
		return fmt.Sprintf("%v\n%s", err, strings.TrimSpace(string(statusErr.Body)))
	}

	var parseErr *wordsapi.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("%v\nbody: %s", err, strings.TrimSpace(string(parseErr.Body)))
	}

	return err.Error()
}
